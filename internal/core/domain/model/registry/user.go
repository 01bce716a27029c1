package registry

import (
	"fmt"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/pkg/errs"
)

// ErrUnknownAttribute is returned when an attribute projection is asked for a
// name the variant does not expose.
var ErrUnknownAttribute = fmt.Errorf("%w: unknown attribute name", errs.ErrValueIsInvalid)

// UserKind is the closed enumeration of user variants in the registry.
type UserKind int

const (
	UserKindUnknown UserKind = iota
	Customer
	Owner
	Courier
)

// Validate checks that the kind is one of the registered variants.
func (k UserKind) Validate() error {
	switch k {
	case Customer, Owner, Courier:
		return nil
	default:
		return errs.NewValueIsOutOfRangeError("user kind", k, Customer, Courier)
	}
}

func (k UserKind) String() string {
	switch k {
	case Customer:
		return "cliente"
	case Owner:
		return "dono"
	case Courier:
		return "entregador"
	default:
		return "desconhecido"
	}
}

// User is a read-only view of a registered user. The registry owns the data;
// the core only projects it. Variant-specific fields are populated according
// to Kind and zero otherwise.
type User struct {
	ID      kernel.UserID
	Kind    UserKind
	Name    string
	Email   string
	Address string

	// CPF is set for Owner users only.
	CPF string

	// Vehicle and Plate are set for Courier users only.
	Vehicle string
	Plate   string
}

// userAttributes are the projections every user variant exposes.
var userAttributes = map[string]func(User) string{
	"nome":     func(u User) string { return u.Name },
	"email":    func(u User) string { return u.Email },
	"endereco": func(u User) string { return u.Address },
}

// userKindAttributes are the projections specific to one variant.
var userKindAttributes = map[UserKind]map[string]func(User) string{
	Owner: {
		"cpf": func(u User) string { return u.CPF },
	},
	Courier: {
		"veiculo": func(u User) string { return u.Vehicle },
		"placa":   func(u User) string { return u.Plate },
	},
}

// Attribute projects the user onto a named attribute. Shared names resolve for
// every variant; variant names resolve only for the matching kind. A name no
// table recognizes fails with ErrUnknownAttribute.
func (u User) Attribute(name string) (string, error) {
	if project, ok := userAttributes[name]; ok {
		return project(u), nil
	}
	if project, ok := userKindAttributes[u.Kind][name]; ok {
		return project(u), nil
	}
	return "", ErrUnknownAttribute
}
