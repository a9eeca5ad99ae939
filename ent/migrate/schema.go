// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DrillEventsColumns holds the columns for the "drill_events" table.
	DrillEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "drill_id", Type: field.TypeString, Unique: true},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "week_plan_id", Type: field.TypeString, Nullable: true},
		{Name: "day_number", Type: field.TypeInt, Default: 0},
		{Name: "attempt_number", Type: field.TypeInt, Default: 1},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "total_minutes", Type: field.TypeInt, Default: 0},
		{Name: "payload", Type: field.TypeJSON},
	}
	// DrillEventsTable holds the schema information for the "drill_events" table.
	DrillEventsTable = &schema.Table{
		Name:       "drill_events",
		Columns:    DrillEventsColumns,
		PrimaryKey: []*schema.Column{DrillEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drillevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[2]},
			},
			{
				Name:    "drillevent_skill_id_day_number",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[4], DrillEventsColumns[6]},
			},
			{
				Name:    "drillevent_week_plan_id",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[5]},
			},
		},
	}
	// OutcomeEventsColumns holds the columns for the "outcome_events" table.
	OutcomeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "skill_id", Type: field.TypeString},
		{Name: "quest_id", Type: field.TypeString, Nullable: true},
		{Name: "outcome", Type: field.TypeString},
		{Name: "from_mastery", Type: field.TypeString},
		{Name: "to_mastery", Type: field.TypeString},
		{Name: "just_mastered", Type: field.TypeBool, Default: false},
		{Name: "unlocked_skills", Type: field.TypeJSON, Nullable: true},
		{Name: "drill_id", Type: field.TypeString, Nullable: true},
	}
	// OutcomeEventsTable holds the schema information for the "outcome_events" table.
	OutcomeEventsTable = &schema.Table{
		Name:       "outcome_events",
		Columns:    OutcomeEventsColumns,
		PrimaryKey: []*schema.Column{OutcomeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "outcomeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[2]},
			},
			{
				Name:    "outcomeevent_skill_id",
				Unique:  false,
				Columns: []*schema.Column{OutcomeEventsColumns[3]},
			},
		},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "skill_id", Type: field.TypeString, Unique: true},
		{Name: "quest_id", Type: field.TypeString},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "topics", Type: field.TypeJSON, Nullable: true},
		{Name: "action", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "success_signal", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "constraints", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "transfer_scenario", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "estimated_minutes", Type: field.TypeInt, Default: 0},
		{Name: "skill_type", Type: field.TypeString},
		{Name: "depth", Type: field.TypeInt, Default: 0},
		{Name: "order", Type: field.TypeInt, Default: 0},
		{Name: "prerequisite_skill_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "prerequisite_quest_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "is_compound", Type: field.TypeBool, Default: false},
		{Name: "component_skill_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "week_number", Type: field.TypeInt, Default: 0},
		{Name: "day_in_week", Type: field.TypeInt, Default: 0},
		{Name: "day_in_quest", Type: field.TypeInt, Default: 0},
		{Name: "mastery", Type: field.TypeString, Default: "not_started"},
		{Name: "status", Type: field.TypeString, Default: "locked"},
		{Name: "pass_count", Type: field.TypeInt, Default: 0},
		{Name: "fail_count", Type: field.TypeInt, Default: 0},
		{Name: "consecutive_passes", Type: field.TypeInt, Default: 0},
		{Name: "mastered_at", Type: field.TypeTime, Nullable: true},
		{Name: "unlocked_at", Type: field.TypeTime, Nullable: true},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skill_quest_id",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[2]},
			},
			{
				Name:    "skill_goal_id",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[3]},
			},
			{
				Name:    "skill_status",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[23]},
			},
			{
				Name:    "skill_skill_type",
				Unique:  false,
				Columns: []*schema.Column{SkillsColumns[12]},
			},
		},
	}
	// WeekPlansColumns holds the columns for the "week_plans" table.
	WeekPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plan_id", Type: field.TypeString, Unique: true},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "quest_id", Type: field.TypeString},
		{Name: "week_number", Type: field.TypeInt},
		{Name: "week_in_quest", Type: field.TypeInt},
		{Name: "is_first_week_of_quest", Type: field.TypeBool, Default: false},
		{Name: "is_last_week_of_quest", Type: field.TypeBool, Default: false},
		{Name: "days", Type: field.TypeJSON, Nullable: true},
		{Name: "scheduled_skill_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "carry_forward_skill_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "reviews_from_quest_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "builds_on_skill_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "theme", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "weekly_competence", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "drills_completed", Type: field.TypeInt, Default: 0},
		{Name: "drills_passed", Type: field.TypeInt, Default: 0},
		{Name: "drills_failed", Type: field.TypeInt, Default: 0},
		{Name: "drills_skipped", Type: field.TypeInt, Default: 0},
		{Name: "skills_mastered", Type: field.TypeInt, Default: 0},
		{Name: "pass_rate", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WeekPlansTable holds the schema information for the "week_plans" table.
	WeekPlansTable = &schema.Table{
		Name:       "week_plans",
		Columns:    WeekPlansColumns,
		PrimaryKey: []*schema.Column{WeekPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weekplan_goal_id",
				Unique:  false,
				Columns: []*schema.Column{WeekPlansColumns[2]},
			},
			{
				Name:    "weekplan_quest_id",
				Unique:  false,
				Columns: []*schema.Column{WeekPlansColumns[4]},
			},
			{
				Name:    "weekplan_goal_id_status",
				Unique:  false,
				Columns: []*schema.Column{WeekPlansColumns[2], WeekPlansColumns[22]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DrillEventsTable,
		OutcomeEventsTable,
		SkillsTable,
		WeekPlansTable,
	}
)

func init() {
}
