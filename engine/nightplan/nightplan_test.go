package nightplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
)

func TestBuild_IncludesOnlyTemplatedRoles(t *testing.T) {
	plan, err := Build([]roles.ID{roles.Guard, roles.Villager}, nil)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 1)
	assert.Equal(t, schema.GuardProtect, plan.Steps[0].SchemaID)
}

func TestBuild_PreservesNightStepTableOrder(t *testing.T) {
	plan, err := Build([]roles.ID{roles.Witch, roles.Guard}, nil)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, schema.GuardProtect, plan.Steps[0].SchemaID, "guard precedes witch regardless of template order")
	assert.Equal(t, schema.WitchAction, plan.Steps[1].SchemaID)
}

func TestBuild_IncludesWolfKillForAnyWolfVoteParticipant(t *testing.T) {
	plan, err := Build([]roles.ID{roles.DarkWolfKing, roles.Villager}, nil)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2, "darkWolfKing's own confirm step plus the shared wolfKill step")
	var sawWolfKill bool
	for _, s := range plan.Steps {
		if s.SchemaID == schema.WolfKill {
			sawWolfKill = true
		}
	}
	assert.True(t, sawWolfKill)
}

func TestBuild_FailsFastOnUnknownRole(t *testing.T) {
	_, err := Build([]roles.ID{"bogus"}, nil)
	assert.Error(t, err)
}

func TestBuild_ReordersSeerFamilyByLabel(t *testing.T) {
	template := []roles.ID{roles.Seer, roles.MirrorSeer}
	labels := map[roles.ID]int{roles.Seer: 2, roles.MirrorSeer: 1}
	plan, err := Build(template, labels)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)
	assert.Equal(t, roles.MirrorSeer, plan.Steps[0].RoleID, "label 1 plays first despite appearing later in the base table")
	assert.Equal(t, roles.Seer, plan.Steps[1].RoleID)
}

func TestAssignSeerLabels_NoLabelsForASingleSeerRole(t *testing.T) {
	labels := AssignSeerLabels([]roles.ID{roles.Seer, roles.Villager})
	assert.Nil(t, labels)
}

func TestAssignSeerLabels_LabelsMultipleSeerFamilyRolesInTableOrder(t *testing.T) {
	labels := AssignSeerLabels([]roles.ID{roles.DrunkSeer, roles.Seer})
	require.NotNil(t, labels)
	assert.Equal(t, 1, labels[roles.Seer], "seer precedes drunkSeer in the canonical table")
	assert.Equal(t, 2, labels[roles.DrunkSeer])
}
