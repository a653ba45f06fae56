// Package nightplan projects the canonical night-step table onto a
// template's rolled roles, producing the ordered sequence the
// progression driver walks.
package nightplan

import (
	"fmt"
	"sort"

	"nightwatch/engine/roles"
	"nightwatch/engine/schema"
)

// Step is one entry of a built night plan.
type Step struct {
	RoleID      roles.ID
	SchemaID    schema.ID
	Order       int
	DisplayName string
	AudioKey    string
	AudioEnd    string
}

// Plan is the ordered sequence a game runs through on night one.
type Plan struct {
	Steps []Step
}

// Build projects schema.NightStepTable onto templateRoles, keeping only
// steps whose role is present in the template. The wolfKill step is
// special-cased: it is included whenever ANY templated role
// participatesInWolfVote, not only the basic wolf role. When seerLabelMap
// is non-nil, seer-family steps are reordered by ascending label so label
// 1 plays before label 2. Unknown role ids in templateRoles fail fast.
func Build(templateRoles []roles.ID, seerLabelMap map[roles.ID]int) (Plan, error) {
	present := make(map[roles.ID]bool, len(templateRoles))
	anyWolfVote := false
	for _, id := range templateRoles {
		role, ok := roles.Get(id)
		if !ok {
			return Plan{}, fmt.Errorf("nightplan: unknown role id %q in template", id)
		}
		present[id] = true
		if roles.ParticipatesInWolfVote(id) {
			anyWolfVote = true
		}
	}

	var steps []Step
	order := 0
	for _, desc := range schema.NightStepTable {
		include := present[desc.RoleID]
		if desc.SchemaID == schema.WolfKill {
			include = anyWolfVote
		}
		if !include {
			continue
		}
		roleDef, _ := roles.Get(desc.RoleID)
		steps = append(steps, Step{
			RoleID:      desc.RoleID,
			SchemaID:    desc.SchemaID,
			Order:       order,
			DisplayName: roleDef.DisplayName,
			AudioKey:    desc.AudioKey,
			AudioEnd:    desc.AudioEnd,
		})
		order++
	}

	if seerLabelMap != nil {
		reorderSeerFamily(steps, seerLabelMap)
	}

	return Plan{Steps: steps}, nil
}

// reorderSeerFamily stable-sorts the seer-family steps among themselves
// by ascending label, leaving every non-seer-family step's relative
// position untouched.
func reorderSeerFamily(steps []Step, labelMap map[roles.ID]int) {
	isSeerFamily := func(roleID roles.ID) bool {
		r, ok := roles.Get(roleID)
		return ok && r.SeerFamily
	}

	var positions []int
	for i, st := range steps {
		if isSeerFamily(st.RoleID) {
			positions = append(positions, i)
		}
	}
	if len(positions) < 2 {
		return
	}

	group := make([]Step, len(positions))
	for i, p := range positions {
		group[i] = steps[p]
	}
	sort.SliceStable(group, func(i, j int) bool {
		return labelMap[group[i].RoleID] < labelMap[group[j].RoleID]
	})
	for i, p := range positions {
		steps[p] = group[i]
		steps[p].Order = steps[p].Order // order field is cosmetic; index is authoritative
	}
}

// AssignSeerLabels builds the seerLabelMap for a template: when two or
// more seer-family roles coexist, each gets a 1-based label in the order
// the canonical night-step table lists them. A single seer-family role
// (or none) gets no label map at all.
func AssignSeerLabels(templateRoles []roles.ID) map[roles.ID]int {
	present := make(map[roles.ID]bool, len(templateRoles))
	for _, id := range templateRoles {
		present[id] = true
	}

	var seerFamilyInOrder []roles.ID
	seen := make(map[roles.ID]bool)
	for _, desc := range schema.NightStepTable {
		if seen[desc.RoleID] || !present[desc.RoleID] {
			continue
		}
		if r, ok := roles.Get(desc.RoleID); ok && r.SeerFamily {
			seerFamilyInOrder = append(seerFamilyInOrder, desc.RoleID)
			seen[desc.RoleID] = true
		}
	}

	if len(seerFamilyInOrder) < 2 {
		return nil
	}

	labels := make(map[roles.ID]int, len(seerFamilyInOrder))
	for i, id := range seerFamilyInOrder {
		labels[id] = i + 1
	}
	return labels
}
