package commands_test

import (
	"testing"

	"myfood/internal/core/application/usecases/commands"
	"myfood/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(10, 20)
	require.NoError(t, err)
	assert.Equal(t, kernel.UserID(10), cmd.CustomerID())
	assert.Equal(t, kernel.CompanyID(20), cmd.CompanyID())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, 0)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_UnassignedCustomer(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(0, 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user id")
}

func TestNewCreateOrderCommand_UnassignedCompany(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(10, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company id")
}
