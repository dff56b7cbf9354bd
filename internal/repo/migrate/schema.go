// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdminsColumns holds the columns for the "admins" table.
	AdminsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "editor", "viewer"}, Default: "editor"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// AdminsTable holds the schema information for the "admins" table.
	AdminsTable = &schema.Table{
		Name:       "admins",
		Columns:    AdminsColumns,
		PrimaryKey: []*schema.Column{AdminsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "admin_username",
				Unique:  false,
				Columns: []*schema.Column{AdminsColumns[4]},
			},
		},
	}
	// AdminSessionsColumns holds the columns for the "admin_sessions" table.
	AdminSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "refresh_token_hash", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "user_agent", Type: field.TypeString, Nullable: true},
		{Name: "ip_address", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "last_used_at", Type: field.TypeTime, Nullable: true},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "admin_id", Type: field.TypeUUID},
	}
	// AdminSessionsTable holds the schema information for the "admin_sessions" table.
	AdminSessionsTable = &schema.Table{
		Name:       "admin_sessions",
		Columns:    AdminSessionsColumns,
		PrimaryKey: []*schema.Column{AdminSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "admin_sessions_admins_sessions",
				Columns:    []*schema.Column{AdminSessionsColumns[10]},
				RefColumns: []*schema.Column{AdminsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "adminsession_session_id",
				Unique:  false,
				Columns: []*schema.Column{AdminSessionsColumns[3]},
			},
			{
				Name:    "adminsession_admin_id",
				Unique:  false,
				Columns: []*schema.Column{AdminSessionsColumns[10]},
			},
		},
	}
	// AnswersColumns holds the columns for the "answers" table.
	AnswersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "option_id", Type: field.TypeUUID, Nullable: true},
		{Name: "value", Type: field.TypeFloat64, Nullable: true},
		{Name: "selected_option_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "text_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "question_id", Type: field.TypeUUID},
		{Name: "submission_id", Type: field.TypeUUID},
	}
	// AnswersTable holds the schema information for the "answers" table.
	AnswersTable = &schema.Table{
		Name:       "answers",
		Columns:    AnswersColumns,
		PrimaryKey: []*schema.Column{AnswersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "answers_questions_answers",
				Columns:    []*schema.Column{AnswersColumns[6]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "answers_submissions_answers",
				Columns:    []*schema.Column{AnswersColumns[7]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "answer_submission_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[7]},
			},
			{
				Name:    "answer_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswersColumns[6]},
			},
		},
	}
	// AssessmentLevelsColumns holds the columns for the "assessment_levels" table.
	AssessmentLevelsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 50},
		{Name: "min_score", Type: field.TypeFloat64},
		{Name: "max_score", Type: field.TypeFloat64},
		{Name: "opinion", Type: field.TypeString, Size: 2147483647},
		{Name: "group_key", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "dimension_id", Type: field.TypeUUID, Nullable: true},
		{Name: "questionnaire_id", Type: field.TypeUUID},
	}
	// AssessmentLevelsTable holds the schema information for the "assessment_levels" table.
	AssessmentLevelsTable = &schema.Table{
		Name:       "assessment_levels",
		Columns:    AssessmentLevelsColumns,
		PrimaryKey: []*schema.Column{AssessmentLevelsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assessment_levels_questionnaires_assessment_levels",
				Columns:    []*schema.Column{AssessmentLevelsColumns[10]},
				RefColumns: []*schema.Column{QuestionnairesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentlevel_questionnaire_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentLevelsColumns[10]},
			},
			{
				Name:    "assessmentlevel_questionnaire_id_dimension_id_group_key",
				Unique:  false,
				Columns: []*schema.Column{AssessmentLevelsColumns[10], AssessmentLevelsColumns[9], AssessmentLevelsColumns[8]},
			},
		},
	}
	// BranchRulesColumns holds the columns for the "branch_rules" table.
	BranchRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "option_id", Type: field.TypeUUID, Nullable: true},
		{Name: "next_questionnaire_id", Type: field.TypeUUID},
		{Name: "question_id", Type: field.TypeUUID},
		{Name: "questionnaire_id", Type: field.TypeUUID},
	}
	// BranchRulesTable holds the schema information for the "branch_rules" table.
	BranchRulesTable = &schema.Table{
		Name:       "branch_rules",
		Columns:    BranchRulesColumns,
		PrimaryKey: []*schema.Column{BranchRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "branch_rules_questions_branch_rules",
				Columns:    []*schema.Column{BranchRulesColumns[6]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "branch_rules_questionnaires_branch_rules",
				Columns:    []*schema.Column{BranchRulesColumns[7]},
				RefColumns: []*schema.Column{QuestionnairesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "branchrule_question_id_option_id",
				Unique:  false,
				Columns: []*schema.Column{BranchRulesColumns[6], BranchRulesColumns[4]},
			},
			{
				Name:    "branchrule_questionnaire_id",
				Unique:  false,
				Columns: []*schema.Column{BranchRulesColumns[7]},
			},
		},
	}
	// DimensionsColumns holds the columns for the "dimensions" table.
	DimensionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "weight", Type: field.TypeFloat64, Default: 1},
		{Name: "is_basic_info", Type: field.TypeBool, Default: false},
		{Name: "questionnaire_id", Type: field.TypeUUID},
	}
	// DimensionsTable holds the schema information for the "dimensions" table.
	DimensionsTable = &schema.Table{
		Name:       "dimensions",
		Columns:    DimensionsColumns,
		PrimaryKey: []*schema.Column{DimensionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dimensions_questionnaires_dimensions",
				Columns:    []*schema.Column{DimensionsColumns[7]},
				RefColumns: []*schema.Column{QuestionnairesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dimension_questionnaire_id",
				Unique:  false,
				Columns: []*schema.Column{DimensionsColumns[7]},
			},
			{
				Name:    "dimension_questionnaire_id_is_basic_info",
				Unique:  false,
				Columns: []*schema.Column{DimensionsColumns[7], DimensionsColumns[6]},
			},
		},
	}
	// DimensionScoresColumns holds the columns for the "dimension_scores" table.
	DimensionScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "dimension_id", Type: field.TypeUUID},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "weight", Type: field.TypeFloat64},
		{Name: "assessment_level", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "assessment_opinion", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "submission_id", Type: field.TypeUUID},
	}
	// DimensionScoresTable holds the schema information for the "dimension_scores" table.
	DimensionScoresTable = &schema.Table{
		Name:       "dimension_scores",
		Columns:    DimensionScoresColumns,
		PrimaryKey: []*schema.Column{DimensionScoresColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "dimension_scores_submissions_dimension_scores",
				Columns:    []*schema.Column{DimensionScoresColumns[7]},
				RefColumns: []*schema.Column{SubmissionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "dimensionscore_submission_id",
				Unique:  false,
				Columns: []*schema.Column{DimensionScoresColumns[7]},
			},
			{
				Name:    "dimensionscore_submission_id_dimension_id",
				Unique:  true,
				Columns: []*schema.Column{DimensionScoresColumns[7], DimensionScoresColumns[2]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"text", "single", "multiple", "area", "address"}},
		{Name: "display_order", Type: field.TypeInt, Default: 0},
		{Name: "is_grouping", Type: field.TypeBool, Default: false},
		{Name: "multiline", Type: field.TypeBool, Default: false},
		{Name: "input_rows", Type: field.TypeInt, Default: 1},
		{Name: "input_type", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "dimension_id", Type: field.TypeUUID, Nullable: true},
		{Name: "questionnaire_id", Type: field.TypeUUID},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questions_dimensions_questions",
				Columns:    []*schema.Column{QuestionsColumns[11]},
				RefColumns: []*schema.Column{DimensionsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "questions_questionnaires_questions",
				Columns:    []*schema.Column{QuestionsColumns[12]},
				RefColumns: []*schema.Column{QuestionnairesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "question_questionnaire_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[12]},
			},
			{
				Name:    "question_dimension_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[11]},
			},
		},
	}
	// QuestionnairesColumns holds the columns for the "questionnaires" table.
	QuestionnairesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "published", "closed"}, Default: "draft"},
		{Name: "is_published", Type: field.TypeBool, Default: false},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "access_code", Type: field.TypeString, Unique: true, Nullable: true, Size: 32},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
	}
	// QuestionnairesTable holds the schema information for the "questionnaires" table.
	QuestionnairesTable = &schema.Table{
		Name:       "questionnaires",
		Columns:    QuestionnairesColumns,
		PrimaryKey: []*schema.Column{QuestionnairesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "questionnaires_questionnaires_children",
				Columns:    []*schema.Column{QuestionnairesColumns[10]},
				RefColumns: []*schema.Column{QuestionnairesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "questionnaire_access_code",
				Unique:  false,
				Columns: []*schema.Column{QuestionnairesColumns[9]},
			},
			{
				Name:    "questionnaire_parent_id",
				Unique:  false,
				Columns: []*schema.Column{QuestionnairesColumns[10]},
			},
		},
	}
	// SubmissionsColumns holds the columns for the "submissions" table.
	SubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "submitted_at", Type: field.TypeTime},
		{Name: "total_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "assessment_level", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "assessment_opinion", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "group_key", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "questionnaire_id", Type: field.TypeUUID},
	}
	// SubmissionsTable holds the schema information for the "submissions" table.
	SubmissionsTable = &schema.Table{
		Name:       "submissions",
		Columns:    SubmissionsColumns,
		PrimaryKey: []*schema.Column{SubmissionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "submissions_questionnaires_submissions",
				Columns:    []*schema.Column{SubmissionsColumns[8]},
				RefColumns: []*schema.Column{QuestionnairesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "submission_questionnaire_id",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[8]},
			},
			{
				Name:    "submission_questionnaire_id_submitted_at",
				Unique:  false,
				Columns: []*schema.Column{SubmissionsColumns[8], SubmissionsColumns[3]},
			},
		},
	}
	// OptionsColumns holds the columns for the "options" table.
	OptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "text", Type: field.TypeString, Size: 200},
		{Name: "value", Type: field.TypeFloat64, Nullable: true},
		{Name: "is_other", Type: field.TypeBool, Default: false},
		{Name: "question_id", Type: field.TypeUUID},
	}
	// OptionsTable holds the schema information for the "options" table.
	OptionsTable = &schema.Table{
		Name:       "options",
		Columns:    OptionsColumns,
		PrimaryKey: []*schema.Column{OptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "options_questions_options",
				Columns:    []*schema.Column{OptionsColumns[7]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "surveyoption_question_id",
				Unique:  false,
				Columns: []*schema.Column{OptionsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdminsTable,
		AdminSessionsTable,
		AnswersTable,
		AssessmentLevelsTable,
		BranchRulesTable,
		DimensionsTable,
		DimensionScoresTable,
		QuestionsTable,
		QuestionnairesTable,
		SubmissionsTable,
		OptionsTable,
	}
)

func init() {
	AdminSessionsTable.ForeignKeys[0].RefTable = AdminsTable
	AnswersTable.ForeignKeys[0].RefTable = QuestionsTable
	AnswersTable.ForeignKeys[1].RefTable = SubmissionsTable
	AssessmentLevelsTable.ForeignKeys[0].RefTable = QuestionnairesTable
	BranchRulesTable.ForeignKeys[0].RefTable = QuestionsTable
	BranchRulesTable.ForeignKeys[1].RefTable = QuestionnairesTable
	DimensionsTable.ForeignKeys[0].RefTable = QuestionnairesTable
	DimensionScoresTable.ForeignKeys[0].RefTable = SubmissionsTable
	QuestionsTable.ForeignKeys[0].RefTable = DimensionsTable
	QuestionsTable.ForeignKeys[1].RefTable = QuestionnairesTable
	QuestionnairesTable.ForeignKeys[0].RefTable = QuestionnairesTable
	SubmissionsTable.ForeignKeys[0].RefTable = QuestionnairesTable
	OptionsTable.ForeignKeys[0].RefTable = QuestionsTable
	OptionsTable.Annotation = &entsql.Annotation{
		Table: "options",
	}
}
