package skillgraph

import (
	"strings"
	"testing"
)

func TestValidate_DuplicateIDs(t *testing.T) {
	skills := []Skill{
		{ID: "dup", SkillType: TypeFoundation},
		{ID: "dup", SkillType: TypeBuilding},
	}
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "duplicate skill ID") {
		t.Errorf("New() error = %v, want duplicate ID error", err)
	}
}

func TestValidate_CycleDetected(t *testing.T) {
	skills := []Skill{
		{ID: "root", SkillType: TypeFoundation},
		{ID: "a", SkillType: TypeBuilding, PrerequisiteSkillIDs: []string{"b"}},
		{ID: "b", SkillType: TypeBuilding, PrerequisiteSkillIDs: []string{"a"}},
	}
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "cycle detected") {
		t.Errorf("New() error = %v, want cycle error", err)
	}
}

func TestValidate_SelfPrerequisite(t *testing.T) {
	skills := []Skill{
		{ID: "root", SkillType: TypeFoundation},
		{ID: "self", SkillType: TypeBuilding, PrerequisiteSkillIDs: []string{"self"}},
	}
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "itself as a prerequisite") {
		t.Errorf("New() error = %v, want self-prerequisite error", err)
	}
}

func TestValidate_NoRoots(t *testing.T) {
	skills := []Skill{
		{ID: "a", SkillType: TypeBuilding, PrerequisiteSkillIDs: []string{"b"}},
		{ID: "b", SkillType: TypeBuilding, PrerequisiteSkillIDs: []string{"a"}},
	}
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "no root skills") {
		t.Errorf("New() error = %v, want no-roots error", err)
	}
}

func TestValidate_CompoundWithoutComponents(t *testing.T) {
	skills := []Skill{
		{ID: "root", SkillType: TypeFoundation},
		{ID: "c", SkillType: TypeCompound, IsCompound: true, PrerequisiteSkillIDs: []string{"root"}},
	}
	_, err := New(skills)
	if err == nil || !strings.Contains(err.Error(), "no component skills") {
		t.Errorf("New() error = %v, want compound component error", err)
	}
}

func TestValidate_EmptySetIsValid(t *testing.T) {
	if _, err := New(nil); err != nil {
		t.Errorf("New(nil) error = %v, want nil", err)
	}
}

func TestValidate_CrossQuestPrereqAllowed(t *testing.T) {
	skills := []Skill{
		{ID: "root", SkillType: TypeFoundation},
		{ID: "a", SkillType: TypeBuilding, PrerequisiteSkillIDs: []string{"earlier-quest-skill"}},
	}
	if _, err := New(skills); err != nil {
		t.Errorf("New() error = %v, want nil (out-of-set prereq is legal)", err)
	}
}
