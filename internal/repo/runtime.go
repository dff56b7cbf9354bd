// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/halouxiaoyu/survey_backend/internal/repo/admin"
	"github.com/halouxiaoyu/survey_backend/internal/repo/adminsession"
	"github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	"github.com/halouxiaoyu/survey_backend/internal/repo/assessmentlevel"
	"github.com/halouxiaoyu/survey_backend/internal/repo/branchrule"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimension"
	"github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/internal/repo/questionnaire"
	"github.com/halouxiaoyu/survey_backend/internal/repo/submission"
	"github.com/halouxiaoyu/survey_backend/internal/repo/surveyoption"
	"github.com/halouxiaoyu/survey_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	adminMixin := schema.Admin{}.Mixin()
	adminMixinFields0 := adminMixin[0].Fields()
	_ = adminMixinFields0
	adminMixinFields1 := adminMixin[1].Fields()
	_ = adminMixinFields1
	adminFields := schema.Admin{}.Fields()
	_ = adminFields
	// adminDescCreatedAt is the schema descriptor for created_at field.
	adminDescCreatedAt := adminMixinFields1[0].Descriptor()
	// admin.DefaultCreatedAt holds the default value on creation for the created_at field.
	admin.DefaultCreatedAt = adminDescCreatedAt.Default.(func() time.Time)
	// adminDescUpdatedAt is the schema descriptor for updated_at field.
	adminDescUpdatedAt := adminMixinFields1[1].Descriptor()
	// admin.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	admin.DefaultUpdatedAt = adminDescUpdatedAt.Default.(func() time.Time)
	// admin.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	admin.UpdateDefaultUpdatedAt = adminDescUpdatedAt.UpdateDefault.(func() time.Time)
	// adminDescUsername is the schema descriptor for username field.
	adminDescUsername := adminFields[0].Descriptor()
	// admin.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	admin.UsernameValidator = func() func(string) error {
		validators := adminDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// adminDescPasswordHash is the schema descriptor for password_hash field.
	adminDescPasswordHash := adminFields[1].Descriptor()
	// admin.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	admin.PasswordHashValidator = adminDescPasswordHash.Validators[0].(func(string) error)
	// adminDescIsActive is the schema descriptor for is_active field.
	adminDescIsActive := adminFields[3].Descriptor()
	// admin.DefaultIsActive holds the default value on creation for the is_active field.
	admin.DefaultIsActive = adminDescIsActive.Default.(bool)
	// adminDescID is the schema descriptor for id field.
	adminDescID := adminMixinFields0[0].Descriptor()
	// admin.DefaultID holds the default value on creation for the id field.
	admin.DefaultID = adminDescID.Default.(func() uuid.UUID)
	adminsessionMixin := schema.AdminSession{}.Mixin()
	adminsessionMixinFields0 := adminsessionMixin[0].Fields()
	_ = adminsessionMixinFields0
	adminsessionMixinFields1 := adminsessionMixin[1].Fields()
	_ = adminsessionMixinFields1
	adminsessionFields := schema.AdminSession{}.Fields()
	_ = adminsessionFields
	// adminsessionDescCreatedAt is the schema descriptor for created_at field.
	adminsessionDescCreatedAt := adminsessionMixinFields1[0].Descriptor()
	// adminsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	adminsession.DefaultCreatedAt = adminsessionDescCreatedAt.Default.(func() time.Time)
	// adminsessionDescUpdatedAt is the schema descriptor for updated_at field.
	adminsessionDescUpdatedAt := adminsessionMixinFields1[1].Descriptor()
	// adminsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	adminsession.DefaultUpdatedAt = adminsessionDescUpdatedAt.Default.(func() time.Time)
	// adminsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	adminsession.UpdateDefaultUpdatedAt = adminsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// adminsessionDescSessionID is the schema descriptor for session_id field.
	adminsessionDescSessionID := adminsessionFields[1].Descriptor()
	// adminsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	adminsession.SessionIDValidator = func() func(string) error {
		validators := adminsessionDescSessionID.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(session_id string) error {
			for _, fn := range fns {
				if err := fn(session_id); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// adminsessionDescRefreshTokenHash is the schema descriptor for refresh_token_hash field.
	adminsessionDescRefreshTokenHash := adminsessionFields[2].Descriptor()
	// adminsession.RefreshTokenHashValidator is a validator for the "refresh_token_hash" field. It is called by the builders before save.
	adminsession.RefreshTokenHashValidator = adminsessionDescRefreshTokenHash.Validators[0].(func(string) error)
	// adminsessionDescIPAddress is the schema descriptor for ip_address field.
	adminsessionDescIPAddress := adminsessionFields[4].Descriptor()
	// adminsession.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	adminsession.IPAddressValidator = adminsessionDescIPAddress.Validators[0].(func(string) error)
	// adminsessionDescID is the schema descriptor for id field.
	adminsessionDescID := adminsessionMixinFields0[0].Descriptor()
	// adminsession.DefaultID holds the default value on creation for the id field.
	adminsession.DefaultID = adminsessionDescID.Default.(func() uuid.UUID)
	answerMixin := schema.Answer{}.Mixin()
	answerMixinFields0 := answerMixin[0].Fields()
	_ = answerMixinFields0
	answerMixinFields1 := answerMixin[1].Fields()
	_ = answerMixinFields1
	answerFields := schema.Answer{}.Fields()
	_ = answerFields
	// answerDescCreatedAt is the schema descriptor for created_at field.
	answerDescCreatedAt := answerMixinFields1[0].Descriptor()
	// answer.DefaultCreatedAt holds the default value on creation for the created_at field.
	answer.DefaultCreatedAt = answerDescCreatedAt.Default.(func() time.Time)
	// answerDescID is the schema descriptor for id field.
	answerDescID := answerMixinFields0[0].Descriptor()
	// answer.DefaultID holds the default value on creation for the id field.
	answer.DefaultID = answerDescID.Default.(func() uuid.UUID)
	assessmentlevelMixin := schema.AssessmentLevel{}.Mixin()
	assessmentlevelMixinFields0 := assessmentlevelMixin[0].Fields()
	_ = assessmentlevelMixinFields0
	assessmentlevelMixinFields1 := assessmentlevelMixin[1].Fields()
	_ = assessmentlevelMixinFields1
	assessmentlevelFields := schema.AssessmentLevel{}.Fields()
	_ = assessmentlevelFields
	// assessmentlevelDescCreatedAt is the schema descriptor for created_at field.
	assessmentlevelDescCreatedAt := assessmentlevelMixinFields1[0].Descriptor()
	// assessmentlevel.DefaultCreatedAt holds the default value on creation for the created_at field.
	assessmentlevel.DefaultCreatedAt = assessmentlevelDescCreatedAt.Default.(func() time.Time)
	// assessmentlevelDescUpdatedAt is the schema descriptor for updated_at field.
	assessmentlevelDescUpdatedAt := assessmentlevelMixinFields1[1].Descriptor()
	// assessmentlevel.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assessmentlevel.DefaultUpdatedAt = assessmentlevelDescUpdatedAt.Default.(func() time.Time)
	// assessmentlevel.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assessmentlevel.UpdateDefaultUpdatedAt = assessmentlevelDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assessmentlevelDescName is the schema descriptor for name field.
	assessmentlevelDescName := assessmentlevelFields[1].Descriptor()
	// assessmentlevel.NameValidator is a validator for the "name" field. It is called by the builders before save.
	assessmentlevel.NameValidator = func() func(string) error {
		validators := assessmentlevelDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assessmentlevelDescOpinion is the schema descriptor for opinion field.
	assessmentlevelDescOpinion := assessmentlevelFields[4].Descriptor()
	// assessmentlevel.OpinionValidator is a validator for the "opinion" field. It is called by the builders before save.
	assessmentlevel.OpinionValidator = assessmentlevelDescOpinion.Validators[0].(func(string) error)
	// assessmentlevelDescGroupKey is the schema descriptor for group_key field.
	assessmentlevelDescGroupKey := assessmentlevelFields[5].Descriptor()
	// assessmentlevel.GroupKeyValidator is a validator for the "group_key" field. It is called by the builders before save.
	assessmentlevel.GroupKeyValidator = assessmentlevelDescGroupKey.Validators[0].(func(string) error)
	// assessmentlevelDescID is the schema descriptor for id field.
	assessmentlevelDescID := assessmentlevelMixinFields0[0].Descriptor()
	// assessmentlevel.DefaultID holds the default value on creation for the id field.
	assessmentlevel.DefaultID = assessmentlevelDescID.Default.(func() uuid.UUID)
	branchruleMixin := schema.BranchRule{}.Mixin()
	branchruleMixinFields0 := branchruleMixin[0].Fields()
	_ = branchruleMixinFields0
	branchruleMixinFields1 := branchruleMixin[1].Fields()
	_ = branchruleMixinFields1
	branchruleFields := schema.BranchRule{}.Fields()
	_ = branchruleFields
	// branchruleDescCreatedAt is the schema descriptor for created_at field.
	branchruleDescCreatedAt := branchruleMixinFields1[0].Descriptor()
	// branchrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	branchrule.DefaultCreatedAt = branchruleDescCreatedAt.Default.(func() time.Time)
	// branchruleDescUpdatedAt is the schema descriptor for updated_at field.
	branchruleDescUpdatedAt := branchruleMixinFields1[1].Descriptor()
	// branchrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	branchrule.DefaultUpdatedAt = branchruleDescUpdatedAt.Default.(func() time.Time)
	// branchrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	branchrule.UpdateDefaultUpdatedAt = branchruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// branchruleDescID is the schema descriptor for id field.
	branchruleDescID := branchruleMixinFields0[0].Descriptor()
	// branchrule.DefaultID holds the default value on creation for the id field.
	branchrule.DefaultID = branchruleDescID.Default.(func() uuid.UUID)
	dimensionMixin := schema.Dimension{}.Mixin()
	dimensionMixinFields0 := dimensionMixin[0].Fields()
	_ = dimensionMixinFields0
	dimensionMixinFields1 := dimensionMixin[1].Fields()
	_ = dimensionMixinFields1
	dimensionFields := schema.Dimension{}.Fields()
	_ = dimensionFields
	// dimensionDescCreatedAt is the schema descriptor for created_at field.
	dimensionDescCreatedAt := dimensionMixinFields1[0].Descriptor()
	// dimension.DefaultCreatedAt holds the default value on creation for the created_at field.
	dimension.DefaultCreatedAt = dimensionDescCreatedAt.Default.(func() time.Time)
	// dimensionDescUpdatedAt is the schema descriptor for updated_at field.
	dimensionDescUpdatedAt := dimensionMixinFields1[1].Descriptor()
	// dimension.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	dimension.DefaultUpdatedAt = dimensionDescUpdatedAt.Default.(func() time.Time)
	// dimension.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	dimension.UpdateDefaultUpdatedAt = dimensionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// dimensionDescName is the schema descriptor for name field.
	dimensionDescName := dimensionFields[1].Descriptor()
	// dimension.NameValidator is a validator for the "name" field. It is called by the builders before save.
	dimension.NameValidator = func() func(string) error {
		validators := dimensionDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// dimensionDescWeight is the schema descriptor for weight field.
	dimensionDescWeight := dimensionFields[2].Descriptor()
	// dimension.DefaultWeight holds the default value on creation for the weight field.
	dimension.DefaultWeight = dimensionDescWeight.Default.(float64)
	// dimensionDescIsBasicInfo is the schema descriptor for is_basic_info field.
	dimensionDescIsBasicInfo := dimensionFields[3].Descriptor()
	// dimension.DefaultIsBasicInfo holds the default value on creation for the is_basic_info field.
	dimension.DefaultIsBasicInfo = dimensionDescIsBasicInfo.Default.(bool)
	// dimensionDescID is the schema descriptor for id field.
	dimensionDescID := dimensionMixinFields0[0].Descriptor()
	// dimension.DefaultID holds the default value on creation for the id field.
	dimension.DefaultID = dimensionDescID.Default.(func() uuid.UUID)
	dimensionscoreMixin := schema.DimensionScore{}.Mixin()
	dimensionscoreMixinFields0 := dimensionscoreMixin[0].Fields()
	_ = dimensionscoreMixinFields0
	dimensionscoreMixinFields1 := dimensionscoreMixin[1].Fields()
	_ = dimensionscoreMixinFields1
	dimensionscoreFields := schema.DimensionScore{}.Fields()
	_ = dimensionscoreFields
	// dimensionscoreDescCreatedAt is the schema descriptor for created_at field.
	dimensionscoreDescCreatedAt := dimensionscoreMixinFields1[0].Descriptor()
	// dimensionscore.DefaultCreatedAt holds the default value on creation for the created_at field.
	dimensionscore.DefaultCreatedAt = dimensionscoreDescCreatedAt.Default.(func() time.Time)
	// dimensionscoreDescAssessmentLevel is the schema descriptor for assessment_level field.
	dimensionscoreDescAssessmentLevel := dimensionscoreFields[4].Descriptor()
	// dimensionscore.AssessmentLevelValidator is a validator for the "assessment_level" field. It is called by the builders before save.
	dimensionscore.AssessmentLevelValidator = dimensionscoreDescAssessmentLevel.Validators[0].(func(string) error)
	// dimensionscoreDescID is the schema descriptor for id field.
	dimensionscoreDescID := dimensionscoreMixinFields0[0].Descriptor()
	// dimensionscore.DefaultID holds the default value on creation for the id field.
	dimensionscore.DefaultID = dimensionscoreDescID.Default.(func() uuid.UUID)
	questionMixin := schema.Question{}.Mixin()
	questionMixinFields0 := questionMixin[0].Fields()
	_ = questionMixinFields0
	questionMixinFields1 := questionMixin[1].Fields()
	_ = questionMixinFields1
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescCreatedAt is the schema descriptor for created_at field.
	questionDescCreatedAt := questionMixinFields1[0].Descriptor()
	// question.DefaultCreatedAt holds the default value on creation for the created_at field.
	question.DefaultCreatedAt = questionDescCreatedAt.Default.(func() time.Time)
	// questionDescUpdatedAt is the schema descriptor for updated_at field.
	questionDescUpdatedAt := questionMixinFields1[1].Descriptor()
	// question.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	question.DefaultUpdatedAt = questionDescUpdatedAt.Default.(func() time.Time)
	// question.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	question.UpdateDefaultUpdatedAt = questionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[2].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescDisplayOrder is the schema descriptor for display_order field.
	questionDescDisplayOrder := questionFields[4].Descriptor()
	// question.DefaultDisplayOrder holds the default value on creation for the display_order field.
	question.DefaultDisplayOrder = questionDescDisplayOrder.Default.(int)
	// questionDescIsGrouping is the schema descriptor for is_grouping field.
	questionDescIsGrouping := questionFields[5].Descriptor()
	// question.DefaultIsGrouping holds the default value on creation for the is_grouping field.
	question.DefaultIsGrouping = questionDescIsGrouping.Default.(bool)
	// questionDescMultiline is the schema descriptor for multiline field.
	questionDescMultiline := questionFields[6].Descriptor()
	// question.DefaultMultiline holds the default value on creation for the multiline field.
	question.DefaultMultiline = questionDescMultiline.Default.(bool)
	// questionDescInputRows is the schema descriptor for input_rows field.
	questionDescInputRows := questionFields[7].Descriptor()
	// question.DefaultInputRows holds the default value on creation for the input_rows field.
	question.DefaultInputRows = questionDescInputRows.Default.(int)
	// questionDescInputType is the schema descriptor for input_type field.
	questionDescInputType := questionFields[8].Descriptor()
	// question.InputTypeValidator is a validator for the "input_type" field. It is called by the builders before save.
	question.InputTypeValidator = questionDescInputType.Validators[0].(func(string) error)
	// questionDescID is the schema descriptor for id field.
	questionDescID := questionMixinFields0[0].Descriptor()
	// question.DefaultID holds the default value on creation for the id field.
	question.DefaultID = questionDescID.Default.(func() uuid.UUID)
	questionnaireMixin := schema.Questionnaire{}.Mixin()
	questionnaireMixinFields0 := questionnaireMixin[0].Fields()
	_ = questionnaireMixinFields0
	questionnaireMixinFields1 := questionnaireMixin[1].Fields()
	_ = questionnaireMixinFields1
	questionnaireFields := schema.Questionnaire{}.Fields()
	_ = questionnaireFields
	// questionnaireDescCreatedAt is the schema descriptor for created_at field.
	questionnaireDescCreatedAt := questionnaireMixinFields1[0].Descriptor()
	// questionnaire.DefaultCreatedAt holds the default value on creation for the created_at field.
	questionnaire.DefaultCreatedAt = questionnaireDescCreatedAt.Default.(func() time.Time)
	// questionnaireDescUpdatedAt is the schema descriptor for updated_at field.
	questionnaireDescUpdatedAt := questionnaireMixinFields1[1].Descriptor()
	// questionnaire.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	questionnaire.DefaultUpdatedAt = questionnaireDescUpdatedAt.Default.(func() time.Time)
	// questionnaire.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	questionnaire.UpdateDefaultUpdatedAt = questionnaireDescUpdatedAt.UpdateDefault.(func() time.Time)
	// questionnaireDescTitle is the schema descriptor for title field.
	questionnaireDescTitle := questionnaireFields[0].Descriptor()
	// questionnaire.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	questionnaire.TitleValidator = func() func(string) error {
		validators := questionnaireDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// questionnaireDescIsPublished is the schema descriptor for is_published field.
	questionnaireDescIsPublished := questionnaireFields[3].Descriptor()
	// questionnaire.DefaultIsPublished holds the default value on creation for the is_published field.
	questionnaire.DefaultIsPublished = questionnaireDescIsPublished.Default.(bool)
	// questionnaireDescAccessCode is the schema descriptor for access_code field.
	questionnaireDescAccessCode := questionnaireFields[5].Descriptor()
	// questionnaire.AccessCodeValidator is a validator for the "access_code" field. It is called by the builders before save.
	questionnaire.AccessCodeValidator = questionnaireDescAccessCode.Validators[0].(func(string) error)
	// questionnaireDescID is the schema descriptor for id field.
	questionnaireDescID := questionnaireMixinFields0[0].Descriptor()
	// questionnaire.DefaultID holds the default value on creation for the id field.
	questionnaire.DefaultID = questionnaireDescID.Default.(func() uuid.UUID)
	submissionMixin := schema.Submission{}.Mixin()
	submissionMixinFields0 := submissionMixin[0].Fields()
	_ = submissionMixinFields0
	submissionMixinFields1 := submissionMixin[1].Fields()
	_ = submissionMixinFields1
	submissionFields := schema.Submission{}.Fields()
	_ = submissionFields
	// submissionDescCreatedAt is the schema descriptor for created_at field.
	submissionDescCreatedAt := submissionMixinFields1[0].Descriptor()
	// submission.DefaultCreatedAt holds the default value on creation for the created_at field.
	submission.DefaultCreatedAt = submissionDescCreatedAt.Default.(func() time.Time)
	// submissionDescSubmittedAt is the schema descriptor for submitted_at field.
	submissionDescSubmittedAt := submissionFields[1].Descriptor()
	// submission.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	submission.DefaultSubmittedAt = submissionDescSubmittedAt.Default.(func() time.Time)
	// submissionDescAssessmentLevel is the schema descriptor for assessment_level field.
	submissionDescAssessmentLevel := submissionFields[3].Descriptor()
	// submission.AssessmentLevelValidator is a validator for the "assessment_level" field. It is called by the builders before save.
	submission.AssessmentLevelValidator = submissionDescAssessmentLevel.Validators[0].(func(string) error)
	// submissionDescGroupKey is the schema descriptor for group_key field.
	submissionDescGroupKey := submissionFields[5].Descriptor()
	// submission.GroupKeyValidator is a validator for the "group_key" field. It is called by the builders before save.
	submission.GroupKeyValidator = submissionDescGroupKey.Validators[0].(func(string) error)
	// submissionDescID is the schema descriptor for id field.
	submissionDescID := submissionMixinFields0[0].Descriptor()
	// submission.DefaultID holds the default value on creation for the id field.
	submission.DefaultID = submissionDescID.Default.(func() uuid.UUID)
	surveyoptionMixin := schema.SurveyOption{}.Mixin()
	surveyoptionMixinFields0 := surveyoptionMixin[0].Fields()
	_ = surveyoptionMixinFields0
	surveyoptionMixinFields1 := surveyoptionMixin[1].Fields()
	_ = surveyoptionMixinFields1
	surveyoptionFields := schema.SurveyOption{}.Fields()
	_ = surveyoptionFields
	// surveyoptionDescCreatedAt is the schema descriptor for created_at field.
	surveyoptionDescCreatedAt := surveyoptionMixinFields1[0].Descriptor()
	// surveyoption.DefaultCreatedAt holds the default value on creation for the created_at field.
	surveyoption.DefaultCreatedAt = surveyoptionDescCreatedAt.Default.(func() time.Time)
	// surveyoptionDescUpdatedAt is the schema descriptor for updated_at field.
	surveyoptionDescUpdatedAt := surveyoptionMixinFields1[1].Descriptor()
	// surveyoption.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	surveyoption.DefaultUpdatedAt = surveyoptionDescUpdatedAt.Default.(func() time.Time)
	// surveyoption.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	surveyoption.UpdateDefaultUpdatedAt = surveyoptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// surveyoptionDescText is the schema descriptor for text field.
	surveyoptionDescText := surveyoptionFields[1].Descriptor()
	// surveyoption.TextValidator is a validator for the "text" field. It is called by the builders before save.
	surveyoption.TextValidator = func() func(string) error {
		validators := surveyoptionDescText.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(text string) error {
			for _, fn := range fns {
				if err := fn(text); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// surveyoptionDescIsOther is the schema descriptor for is_other field.
	surveyoptionDescIsOther := surveyoptionFields[3].Descriptor()
	// surveyoption.DefaultIsOther holds the default value on creation for the is_other field.
	surveyoption.DefaultIsOther = surveyoptionDescIsOther.Default.(bool)
	// surveyoptionDescID is the schema descriptor for id field.
	surveyoptionDescID := surveyoptionMixinFields0[0].Descriptor()
	// surveyoption.DefaultID holds the default value on creation for the id field.
	surveyoption.DefaultID = surveyoptionDescID.Default.(func() uuid.UUID)
}
