package registry_test

import (
	"testing"

	"myfood/internal/core/domain/model/registry"
	"myfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserKind(t *testing.T) {
	t.Run("should accept all registered kinds", func(t *testing.T) {
		for _, k := range []registry.UserKind{registry.Customer, registry.Owner, registry.Courier} {
			require.NoError(t, k.Validate())
		}
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		require.Error(t, registry.UserKindUnknown.Validate())
		require.Error(t, registry.UserKind(99).Validate())
	})
}

func TestUser_Attribute(t *testing.T) {
	courier := registry.User{
		ID:      1,
		Kind:    registry.Courier,
		Name:    "Joana",
		Email:   "joana@example.com",
		Address: "Rua A, 123",
		Vehicle: "moto",
		Plate:   "ABC1D23",
	}

	t.Run("should project shared attributes", func(t *testing.T) {
		for name, want := range map[string]string{
			"nome":     "Joana",
			"email":    "joana@example.com",
			"endereco": "Rua A, 123",
		} {
			got, err := courier.Attribute(name)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should project courier attributes", func(t *testing.T) {
		vehicle, err := courier.Attribute("veiculo")
		require.NoError(t, err)
		assert.Equal(t, "moto", vehicle)

		plate, err := courier.Attribute("placa")
		require.NoError(t, err)
		assert.Equal(t, "ABC1D23", plate)
	})

	t.Run("should project owner cpf", func(t *testing.T) {
		owner := registry.User{ID: 2, Kind: registry.Owner, Name: "Carlos", CPF: "123.456.789-00"}

		cpf, err := owner.Attribute("cpf")

		require.NoError(t, err)
		assert.Equal(t, "123.456.789-00", cpf)
	})

	t.Run("should hide variant attributes from other kinds", func(t *testing.T) {
		customer := registry.User{ID: 3, Kind: registry.Customer, Name: "Ana"}

		_, err := customer.Attribute("placa")

		require.ErrorIs(t, err, registry.ErrUnknownAttribute)
	})

	t.Run("should fail with unknown name", func(t *testing.T) {
		_, err := courier.Attribute("saldo")

		require.ErrorIs(t, err, registry.ErrUnknownAttribute)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCompanyKind(t *testing.T) {
	t.Run("should render registry labels", func(t *testing.T) {
		assert.Equal(t, "restaurante", registry.Restaurant.String())
		assert.Equal(t, "mercado", registry.Market.String())
		assert.Equal(t, "farmacia", registry.Pharmacy.String())
		assert.Equal(t, "desconhecido", registry.CompanyKindUnknown.String())
	})

	t.Run("should reject unknown kind", func(t *testing.T) {
		require.Error(t, registry.CompanyKindUnknown.Validate())
		require.Error(t, registry.CompanyKind(99).Validate())
	})
}

func TestCompany_Attribute(t *testing.T) {
	market := registry.Company{
		ID:         1,
		Kind:       registry.Market,
		Name:       "Mercadão",
		Address:    "Av. Central, 9",
		OwnerID:    4,
		OpensAt:    "08:00",
		ClosesAt:   "20:00",
		MarketType: "supermercado",
	}

	t.Run("should project shared attributes", func(t *testing.T) {
		for name, want := range map[string]string{
			"nome":        "Mercadão",
			"endereco":    "Av. Central, 9",
			"tipoEmpresa": "mercado",
		} {
			got, err := market.Attribute(name)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should project market attributes", func(t *testing.T) {
		opens, err := market.Attribute("abre")
		require.NoError(t, err)
		assert.Equal(t, "08:00", opens)

		kind, err := market.Attribute("tipoMercado")
		require.NoError(t, err)
		assert.Equal(t, "supermercado", kind)
	})

	t.Run("should project pharmacy attributes", func(t *testing.T) {
		pharmacy := registry.Company{ID: 2, Kind: registry.Pharmacy, Open24Hours: true, EmployeeCount: 7}

		open, err := pharmacy.Attribute("aberto24Horas")
		require.NoError(t, err)
		assert.Equal(t, "true", open)

		count, err := pharmacy.Attribute("numeroFuncionarios")
		require.NoError(t, err)
		assert.Equal(t, "7", count)
	})

	t.Run("should hide variant attributes from other kinds", func(t *testing.T) {
		_, err := market.Attribute("tipoCozinha")

		require.ErrorIs(t, err, registry.ErrUnknownAttribute)
	})
}

func TestProduct_Attribute(t *testing.T) {
	product := registry.Product{ID: 5, CompanyID: 1, Name: "Dipirona", Price: 9.5, Category: "analgesico"}

	t.Run("should project name, category and formatted price", func(t *testing.T) {
		name, err := product.Attribute("nome")
		require.NoError(t, err)
		assert.Equal(t, "Dipirona", name)

		category, err := product.Attribute("categoria")
		require.NoError(t, err)
		assert.Equal(t, "analgesico", category)

		price, err := product.Attribute("valor")
		require.NoError(t, err)
		assert.Equal(t, "9.50", price)
	})

	t.Run("should fail with unknown name", func(t *testing.T) {
		_, err := product.Attribute("empresa")

		require.ErrorIs(t, err, registry.ErrUnknownAttribute)
	})
}
