package scoring

import (
	"context"
	"database/sql"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/halouxiaoyu/survey_backend/internal/repo"
	entans "github.com/halouxiaoyu/survey_backend/internal/repo/answer"
	entds "github.com/halouxiaoyu/survey_backend/internal/repo/dimensionscore"
	"github.com/halouxiaoyu/survey_backend/internal/repo/enttest"
	entq "github.com/halouxiaoyu/survey_backend/internal/repo/question"
	"github.com/halouxiaoyu/survey_backend/pkg/groupkey"
)

func openTestClient(t *testing.T) *repo.Client {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	client := enttest.NewClient(t, enttest.WithOptions(repo.Driver(entsql.OpenDB(dialect.SQLite, db))))
	t.Cleanup(func() { client.Close() })
	return client
}

// A band saved on the parent questionnaire against a parent-owned
// dimension must match when a sub-questionnaire submission is scored.
func TestScoreSubQuestionnaireUsesParentBands(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)

	parent, err := client.Questionnaire.Create().
		SetTitle("Anxiety screening").
		Save(ctx)
	if err != nil {
		t.Fatalf("create parent: %v", err)
	}
	dim, err := client.Dimension.Create().
		SetQuestionnaireID(parent.ID).
		SetName("Anxiety").
		SetWeight(1).
		Save(ctx)
	if err != nil {
		t.Fatalf("create dimension: %v", err)
	}
	child, err := client.Questionnaire.Create().
		SetTitle("Anxiety follow-up").
		SetParentID(parent.ID).
		SetIsPublished(true).
		SetAccessCode("FOLLOW01").
		Save(ctx)
	if err != nil {
		t.Fatalf("create child: %v", err)
	}
	q, err := client.Question.Create().
		SetQuestionnaireID(child.ID).
		SetDimensionID(dim.ID).
		SetText("How often do you feel anxious?").
		SetType(entq.TypeSingle).
		Save(ctx)
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	opt, err := client.SurveyOption.Create().
		SetQuestionID(q.ID).
		SetText("Sometimes").
		SetValue(3).
		Save(ctx)
	if err != nil {
		t.Fatalf("create option: %v", err)
	}

	// Dimension band on the parent, total band on the child.
	if _, err := client.AssessmentLevel.Create().
		SetQuestionnaireID(parent.ID).
		SetDimensionID(dim.ID).
		SetName("Mild").
		SetMinScore(0).
		SetMaxScore(5).
		SetOpinion("mild anxiety").
		Save(ctx); err != nil {
		t.Fatalf("create dimension band: %v", err)
	}
	if _, err := client.AssessmentLevel.Create().
		SetQuestionnaireID(child.ID).
		SetName("Low").
		SetMinScore(0).
		SetMaxScore(10).
		SetOpinion("low overall").
		Save(ctx); err != nil {
		t.Fatalf("create total band: %v", err)
	}

	svc := New(client, nil, groupkey.New(), nil)
	res, err := svc.Score(ctx, "FOLLOW01", []RawAnswer{
		{QuestionID: q.ID, OptionID: uptr(opt.ID)},
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.AssessmentLevel == nil || *res.AssessmentLevel != "Low" {
		t.Errorf("total level = %v, want Low", res.AssessmentLevel)
	}

	ds, err := client.DimensionScore.Query().
		Where(entds.SubmissionID(res.SubmissionID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("load dimension score: %v", err)
	}
	if ds.AssessmentLevel == nil || *ds.AssessmentLevel != "Mild" {
		t.Errorf("dimension level = %v, want Mild", ds.AssessmentLevel)
	}
	if ds.Score != 3 {
		t.Errorf("dimension score = %v, want 3", ds.Score)
	}
}

// Scoring persists the full multiple-choice selection, and the submission
// total equals the sum of the persisted dimension score rows.
func TestScorePersistsSelectionAndDimensionSums(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)

	qn, err := client.Questionnaire.Create().
		SetTitle("Lifestyle survey").
		SetIsPublished(true).
		SetAccessCode("LIFE0001").
		Save(ctx)
	if err != nil {
		t.Fatalf("create questionnaire: %v", err)
	}
	sleep, err := client.Dimension.Create().
		SetQuestionnaireID(qn.ID).
		SetName("Sleep").
		SetWeight(2).
		Save(ctx)
	if err != nil {
		t.Fatalf("create sleep dimension: %v", err)
	}
	diet, err := client.Dimension.Create().
		SetQuestionnaireID(qn.ID).
		SetName("Diet").
		SetWeight(1).
		Save(ctx)
	if err != nil {
		t.Fatalf("create diet dimension: %v", err)
	}

	multi, err := client.Question.Create().
		SetQuestionnaireID(qn.ID).
		SetDimensionID(sleep.ID).
		SetText("Which apply to your sleep?").
		SetType(entq.TypeMultiple).
		Save(ctx)
	if err != nil {
		t.Fatalf("create multiple question: %v", err)
	}
	optX, err := client.SurveyOption.Create().SetQuestionID(multi.ID).SetText("Falls asleep fast").SetValue(3).Save(ctx)
	if err != nil {
		t.Fatalf("create option x: %v", err)
	}
	optY, err := client.SurveyOption.Create().SetQuestionID(multi.ID).SetText("Sleeps through").SetValue(5).Save(ctx)
	if err != nil {
		t.Fatalf("create option y: %v", err)
	}

	single, err := client.Question.Create().
		SetQuestionnaireID(qn.ID).
		SetDimensionID(diet.ID).
		SetText("How balanced is your diet?").
		SetType(entq.TypeSingle).
		Save(ctx)
	if err != nil {
		t.Fatalf("create single question: %v", err)
	}
	optZ, err := client.SurveyOption.Create().SetQuestionID(single.ID).SetText("Balanced").SetValue(4).Save(ctx)
	if err != nil {
		t.Fatalf("create option z: %v", err)
	}

	svc := New(client, nil, groupkey.New(), nil)
	res, err := svc.Score(ctx, "LIFE0001", []RawAnswer{
		{QuestionID: multi.ID, OptionIDs: []uuid.UUID{optX.ID, optY.ID}},
		{QuestionID: single.ID, OptionID: uptr(optZ.ID)},
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	// Sleep 8*2 + diet 4*1.
	if res.TotalScore != 20 {
		t.Errorf("total = %v, want 20", res.TotalScore)
	}

	ans, err := client.Answer.Query().
		Where(entans.SubmissionID(res.SubmissionID), entans.QuestionID(multi.ID)).
		Only(ctx)
	if err != nil {
		t.Fatalf("load answer: %v", err)
	}
	if ans.Value == nil || *ans.Value != 8 {
		t.Errorf("answer value = %v, want 8", ans.Value)
	}
	got := map[uuid.UUID]bool{}
	for _, id := range ans.SelectedOptionIds {
		got[id] = true
	}
	if len(got) != 2 || !got[optX.ID] || !got[optY.ID] {
		t.Errorf("selected option ids = %v, want {%s, %s}", ans.SelectedOptionIds, optX.ID, optY.ID)
	}

	sub, err := client.Submission.Get(ctx, res.SubmissionID)
	if err != nil {
		t.Fatalf("load submission: %v", err)
	}
	scores, err := client.DimensionScore.Query().
		Where(entds.SubmissionID(res.SubmissionID)).
		All(ctx)
	if err != nil {
		t.Fatalf("load dimension scores: %v", err)
	}
	var sum float64
	for _, ds := range scores {
		sum += ds.Score
	}
	if sub.TotalScore == nil || *sub.TotalScore != sum {
		t.Errorf("persisted total = %v, dimension score sum = %v", sub.TotalScore, sum)
	}
	if len(scores) != 2 {
		t.Errorf("dimension score rows = %d, want 2", len(scores))
	}
}
