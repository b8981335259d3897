package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dthstore/dthstore-api/internal/entity"
)

func TestNewLeadDefaults(t *testing.T) {
	lead, err := entity.NewLead("Rahul Sharma", "9876543210", "Mumbai",
		entity.ServiceDTH, entity.OpTataPlay)

	assert.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.StatusNew, lead.Status)
	assert.Equal(t, entity.SourceWebsite, lead.Source)
	assert.NotZero(t, lead.CreatedAt)
}

func TestNewLeadRejectsMismatchedOperator(t *testing.T) {
	_, err := entity.NewLead("Rahul Sharma", "9876543210", "Mumbai",
		entity.ServiceDTH, entity.OpJioFiber)

	assert.Error(t, err)
}

func TestOperatorsForServiceType(t *testing.T) {
	assert.Contains(t, entity.OperatorsFor(entity.ServiceDTH), entity.OpDishTV)
	assert.NotContains(t, entity.OperatorsFor(entity.ServiceDTH), entity.OpACTFibernet)
	assert.Contains(t, entity.OperatorsFor(entity.ServiceBroadband), entity.OpOther)
}

func TestAddNoteStampsMetadata(t *testing.T) {
	lead := entity.Lead{ID: "l1"}

	note := lead.AddNote("asked for a callback", "staff")

	assert.Len(t, lead.Notes, 1)
	assert.NotEmpty(t, note.ID)
	assert.NotZero(t, note.CreatedAt)
	assert.Equal(t, "staff", note.CreatedBy)
}

func TestAuthenticateDemoUsers(t *testing.T) {
	admin := entity.Authenticate("admin", "123")
	assert.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	staff := entity.Authenticate("staff", "123")
	assert.NotNil(t, staff)
	assert.Equal(t, entity.RoleStaff, staff.Role)

	assert.Nil(t, entity.Authenticate("admin", "wrong"))
	assert.Nil(t, entity.Authenticate("ghost", "123"))
}
