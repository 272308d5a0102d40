package curation

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
	"github.com/vncorpora/bicorpus-backend/pkg/ctxutil"
)

//go:generate moq -out mocks_test.go -pkg curation . pairRepo draftRepo masterRepo txManager

func newTestService(pairs pairRepo, draft draftRepo, master masterRepo) *Service {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return NewService(logger, pairs, draft, master, &txManagerMock{})
}

// userCtx returns a context carrying a regular user identity.
func userCtx(id uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), id)
	return ctxutil.WithUserRole(ctx, string(domain.UserRoleUser))
}

// adminCtx returns a context carrying an admin identity.
func adminCtx(id uuid.UUID) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), id)
	return ctxutil.WithUserRole(ctx, string(domain.UserRoleAdmin))
}

func samplePair(creator uuid.UUID, status domain.PairStatus) *domain.SentencePair {
	return &domain.SentencePair{
		ID:         uuid.New(),
		SentenceID: "018213",
		SourceText: "tôi đi",
		TargetText: "I go",
		LangPair:   "vi-en",
		Status:     status,
		CreatedBy:  creator,
	}
}

func TestService_CreatePair_Success(t *testing.T) {
	t.Parallel()

	creator := uuid.New()

	pairsMock := &pairRepoMock{
		GetBySentenceIDFunc: func(ctx context.Context, langPair, sentenceID string) (*domain.SentencePair, error) {
			return nil, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, p *domain.SentencePair) (*domain.SentencePair, error) {
			created := *p
			created.ID = uuid.New()
			return &created, nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, &masterRepoMock{})

	pair, err := svc.CreatePair(userCtx(creator), CreatePairInput{
		SentenceID: "018213",
		SourceText: " tôi đi ",
		TargetText: "I go",
		LangPair:   "vi-en",
	})
	if err != nil {
		t.Fatalf("CreatePair() error = %v", err)
	}
	if pair.Status != domain.PairStatusDraft {
		t.Errorf("CreatePair() status = %s, want DRAFT", pair.Status)
	}
	if pair.CreatedBy != creator {
		t.Errorf("CreatePair() created_by = %s, want %s", pair.CreatedBy, creator)
	}

	calls := pairsMock.CreateCalls()
	if len(calls) != 1 {
		t.Fatalf("Create calls = %d, want 1", len(calls))
	}
	if calls[0].Pair.SourceText != "tôi đi" {
		t.Errorf("source text not trimmed: %q", calls[0].Pair.SourceText)
	}
}

func TestService_CreatePair_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&pairRepoMock{}, &draftRepoMock{}, &masterRepoMock{})

	_, err := svc.CreatePair(context.Background(), CreatePairInput{
		SentenceID: "018213",
		SourceText: "tôi đi",
		TargetText: "I go",
		LangPair:   "vi-en",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("CreatePair() error = %v, want ErrUnauthorized", err)
	}
}

func TestService_CreatePair_DuplicateSentence(t *testing.T) {
	t.Parallel()

	creator := uuid.New()
	pairsMock := &pairRepoMock{
		GetBySentenceIDFunc: func(ctx context.Context, langPair, sentenceID string) (*domain.SentencePair, error) {
			return samplePair(creator, domain.PairStatusDraft), nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, &masterRepoMock{})

	_, err := svc.CreatePair(userCtx(creator), CreatePairInput{
		SentenceID: "018213",
		SourceText: "tôi đi",
		TargetText: "I go",
		LangPair:   "vi-en",
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("CreatePair() error = %v, want ErrAlreadyExists", err)
	}
	if len(pairsMock.CreateCalls()) != 0 {
		t.Errorf("Create called for a duplicate sentence")
	}
}

func TestService_CreatePair_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input CreatePairInput
	}{
		{
			name:  "bad sentence number",
			input: CreatePairInput{SentenceID: "18213", SourceText: "a", TargetText: "b", LangPair: "vi-en"},
		},
		{
			name:  "missing source text",
			input: CreatePairInput{SentenceID: "018213", SourceText: "  ", TargetText: "b", LangPair: "vi-en"},
		},
		{
			name:  "missing lang pair",
			input: CreatePairInput{SentenceID: "018213", SourceText: "a", TargetText: "b"},
		},
	}

	svc := newTestService(&pairRepoMock{}, &draftRepoMock{}, &masterRepoMock{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreatePair(userCtx(uuid.New()), tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("CreatePair() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestService_SaveAnalysis_ReplacesRowsAndMovesToPending(t *testing.T) {
	t.Parallel()

	creator := uuid.New()
	pair := samplePair(creator, domain.PairStatusDraft)

	pairsMock := &pairRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
			return pair, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.PairStatus, actor *uuid.UUID) (*domain.SentencePair, error) {
			updated := *pair
			updated.Status = status
			return &updated, nil
		},
	}
	draftMock := &draftRepoMock{
		DeleteBySentenceIDFunc: func(ctx context.Context, langPair, sentenceID string) (int64, error) {
			return 2, nil
		},
		BulkInsertFunc: func(ctx context.Context, recs []domain.WordRecord) (int64, error) {
			return int64(len(recs)), nil
		},
	}

	svc := newTestService(pairsMock, draftMock, &masterRepoMock{})

	updated, err := svc.SaveAnalysis(userCtx(creator), SaveAnalysisInput{
		PairID: pair.ID.String(),
		Rows: []AnalysisRow{
			{ID: "VD01821301", Word: "tôi", Links: "1", LangCode: "vi"},
			{ID: "VD01821302", Word: "đi", Links: "2", LangCode: "vi"},
			{ID: "ED01821301", Word: "I", Links: "1", LangCode: "en"},
			{ID: "ED01821302", Word: "go", LangCode: "en"},
		},
	})
	if err != nil {
		t.Fatalf("SaveAnalysis() error = %v", err)
	}
	if updated.Status != domain.PairStatusPending {
		t.Errorf("SaveAnalysis() status = %s, want PENDING", updated.Status)
	}

	deletes := draftMock.DeleteBySentenceIDCalls()
	if len(deletes) != 1 || deletes[0].SentenceID != "018213" || deletes[0].LangPair != "vi-en" {
		t.Fatalf("DeleteBySentenceID calls = %+v", deletes)
	}

	inserts := draftMock.BulkInsertCalls()
	if len(inserts) != 1 {
		t.Fatalf("BulkInsert calls = %d, want 1", len(inserts))
	}
	recs := inserts[0].Recs
	if len(recs) != 4 {
		t.Fatalf("inserted rows = %d, want 4", len(recs))
	}
	if recs[0].SentenceID != "018213" || recs[0].Position != 1 || recs[0].MainID != "01821301" {
		t.Errorf("decoded identifier fields wrong: %+v", recs[0])
	}
	if recs[3].Links != domain.UnalignedLinks {
		t.Errorf("empty links not defaulted: %q", recs[3].Links)
	}
	if recs[0].CreatedBy == nil || *recs[0].CreatedBy != creator {
		t.Errorf("created_by not stamped")
	}
	if recs[0].LangPair != "vi-en" {
		t.Errorf("lang pair = %q, want vi-en", recs[0].LangPair)
	}
}

func TestService_SaveAnalysis_ForeignSentenceIdentifier(t *testing.T) {
	t.Parallel()

	creator := uuid.New()
	pair := samplePair(creator, domain.PairStatusDraft)

	pairsMock := &pairRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
			return pair, nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, &masterRepoMock{})

	_, err := svc.SaveAnalysis(userCtx(creator), SaveAnalysisInput{
		PairID: pair.ID.String(),
		Rows:   []AnalysisRow{{ID: "VD99999901", Word: "tôi", LangCode: "vi"}},
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("SaveAnalysis() error = %v, want ErrValidation", err)
	}
}

func TestService_SaveAnalysis_OtherUsersPair(t *testing.T) {
	t.Parallel()

	pair := samplePair(uuid.New(), domain.PairStatusDraft)

	pairsMock := &pairRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
			return pair, nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, &masterRepoMock{})

	_, err := svc.SaveAnalysis(userCtx(uuid.New()), SaveAnalysisInput{
		PairID: pair.ID.String(),
		Rows:   []AnalysisRow{{ID: "VD01821301", Word: "tôi", LangCode: "vi"}},
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("SaveAnalysis() error = %v, want ErrForbidden", err)
	}
}

func TestService_SaveAnalysis_ApprovedPairIsConflict(t *testing.T) {
	t.Parallel()

	creator := uuid.New()
	pair := samplePair(creator, domain.PairStatusApproved)

	pairsMock := &pairRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
			return pair, nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, &masterRepoMock{})

	_, err := svc.SaveAnalysis(userCtx(creator), SaveAnalysisInput{
		PairID: pair.ID.String(),
		Rows:   []AnalysisRow{{ID: "VD01821301", Word: "tôi", LangCode: "vi"}},
	})
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("SaveAnalysis() error = %v, want ErrConflict", err)
	}
}

func TestService_Approve_PromotesAndStampsApprover(t *testing.T) {
	t.Parallel()

	admin := uuid.New()
	pair := samplePair(uuid.New(), domain.PairStatusPending)

	pairsMock := &pairRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
			return pair, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.PairStatus, actor *uuid.UUID) (*domain.SentencePair, error) {
			updated := *pair
			updated.Status = status
			updated.ApprovedBy = actor
			return &updated, nil
		},
	}
	masterMock := &masterRepoMock{
		InsertFromDraftFunc: func(ctx context.Context, sentenceID, langPair string, approvedBy uuid.UUID) (int64, error) {
			return 4, nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, masterMock)

	updated, err := svc.Approve(adminCtx(admin), pair.ID.String())
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if updated.Status != domain.PairStatusApproved {
		t.Errorf("Approve() status = %s, want APPROVED", updated.Status)
	}
	if updated.ApprovedBy == nil || *updated.ApprovedBy != admin {
		t.Errorf("Approve() approved_by not stamped")
	}

	promotions := masterMock.InsertFromDraftCalls()
	if len(promotions) != 1 {
		t.Fatalf("InsertFromDraft calls = %d, want 1", len(promotions))
	}
	if promotions[0].SentenceID != "018213" || promotions[0].LangPair != "vi-en" || promotions[0].ApprovedBy != admin {
		t.Errorf("InsertFromDraft call = %+v", promotions[0])
	}
}

func TestService_Approve_NonAdminForbidden(t *testing.T) {
	t.Parallel()

	svc := newTestService(&pairRepoMock{}, &draftRepoMock{}, &masterRepoMock{})

	_, err := svc.Approve(userCtx(uuid.New()), uuid.NewString())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Approve() error = %v, want ErrForbidden", err)
	}
}

func TestService_Approve_NotPendingIsConflict(t *testing.T) {
	t.Parallel()

	pair := samplePair(uuid.New(), domain.PairStatusDraft)

	pairsMock := &pairRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
			return pair, nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, &masterRepoMock{})

	_, err := svc.Approve(adminCtx(uuid.New()), pair.ID.String())
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("Approve() error = %v, want ErrConflict", err)
	}
}

func TestService_Reject_Success(t *testing.T) {
	t.Parallel()

	admin := uuid.New()
	pair := samplePair(uuid.New(), domain.PairStatusPending)

	pairsMock := &pairRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
			return pair, nil
		},
		UpdateStatusFunc: func(ctx context.Context, id uuid.UUID, status domain.PairStatus, actor *uuid.UUID) (*domain.SentencePair, error) {
			updated := *pair
			updated.Status = status
			return &updated, nil
		},
	}

	draftMock := &draftRepoMock{
		DeleteBySentenceIDFunc: func(ctx context.Context, langPair, sentenceID string) (int64, error) {
			return 4, nil
		},
	}

	svc := newTestService(pairsMock, draftMock, &masterRepoMock{})

	updated, err := svc.Reject(adminCtx(admin), pair.ID.String())
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if updated.Status != domain.PairStatusRejected {
		t.Errorf("Reject() status = %s, want REJECTED", updated.Status)
	}

	calls := pairsMock.UpdateStatusCalls()
	if len(calls) != 1 || calls[0].Actor == nil || *calls[0].Actor != admin {
		t.Errorf("UpdateStatus actor not stamped: %+v", calls)
	}

	deletes := draftMock.DeleteBySentenceIDCalls()
	if len(deletes) != 1 || deletes[0].SentenceID != "018213" {
		t.Errorf("draft rows not discarded: %+v", deletes)
	}
}

func TestService_UpdateWord_Success(t *testing.T) {
	t.Parallel()

	creator := uuid.New()
	pair := samplePair(creator, domain.PairStatusDraft)

	pairsMock := &pairRepoMock{
		GetBySentenceIDFunc: func(ctx context.Context, langPair, sentenceID string) (*domain.SentencePair, error) {
			return pair, nil
		},
	}
	draftMock := &draftRepoMock{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.WordRecord, error) {
			return &domain.WordRecord{
				ID: "VD01821301", MainID: "01821301", SentenceID: "018213", Position: 1,
				Word: "toi", Links: "1", LangCode: "vi", LangPair: "vi-en",
			}, nil
		},
		UpdateAnnotationsFunc: func(ctx context.Context, rec *domain.WordRecord) error {
			return nil
		},
	}

	svc := newTestService(pairsMock, draftMock, &masterRepoMock{})

	rec, err := svc.UpdateWord(userCtx(creator), UpdateWordInput{
		ID:   "VD01821301",
		Word: " tôi ",
		POS:  "P",
	})
	if err != nil {
		t.Fatalf("UpdateWord() error = %v", err)
	}
	if rec.Word != "tôi" {
		t.Errorf("word not trimmed: %q", rec.Word)
	}
	if rec.Links != domain.UnalignedLinks {
		t.Errorf("empty links not defaulted: %q", rec.Links)
	}

	updates := draftMock.UpdateAnnotationsCalls()
	if len(updates) != 1 {
		t.Fatalf("UpdateAnnotations calls = %d, want 1", len(updates))
	}
	if updates[0].Rec.POS != "P" {
		t.Errorf("pos = %q, want P", updates[0].Rec.POS)
	}
}

func TestService_UpdateWord_OtherUsersPair(t *testing.T) {
	t.Parallel()

	pair := samplePair(uuid.New(), domain.PairStatusDraft)

	pairsMock := &pairRepoMock{
		GetBySentenceIDFunc: func(ctx context.Context, langPair, sentenceID string) (*domain.SentencePair, error) {
			return pair, nil
		},
	}
	draftMock := &draftRepoMock{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.WordRecord, error) {
			return &domain.WordRecord{ID: "VD01821301", SentenceID: "018213", LangPair: "vi-en"}, nil
		},
	}

	svc := newTestService(pairsMock, draftMock, &masterRepoMock{})

	_, err := svc.UpdateWord(userCtx(uuid.New()), UpdateWordInput{ID: "VD01821301", Word: "tôi"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("UpdateWord() error = %v, want ErrForbidden", err)
	}
	if len(draftMock.UpdateAnnotationsCalls()) != 0 {
		t.Errorf("UpdateAnnotations called despite forbidden")
	}
}

func TestService_UpdateWord_OrphanRowNeedsAdmin(t *testing.T) {
	t.Parallel()

	pairsMock := &pairRepoMock{
		GetBySentenceIDFunc: func(ctx context.Context, langPair, sentenceID string) (*domain.SentencePair, error) {
			return nil, domain.ErrNotFound
		},
	}
	draftMock := &draftRepoMock{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.WordRecord, error) {
			return &domain.WordRecord{ID: "VD01821301", SentenceID: "018213", LangPair: "vi-en"}, nil
		},
		UpdateAnnotationsFunc: func(ctx context.Context, rec *domain.WordRecord) error {
			return nil
		},
	}

	svc := newTestService(pairsMock, draftMock, &masterRepoMock{})

	_, err := svc.UpdateWord(userCtx(uuid.New()), UpdateWordInput{ID: "VD01821301", Word: "tôi"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("UpdateWord() user error = %v, want ErrForbidden", err)
	}

	if _, err := svc.UpdateWord(adminCtx(uuid.New()), UpdateWordInput{ID: "VD01821301", Word: "tôi"}); err != nil {
		t.Errorf("UpdateWord() admin error = %v", err)
	}
}

func TestService_ListPending_AdminOnly(t *testing.T) {
	t.Parallel()

	svc := newTestService(&pairRepoMock{}, &draftRepoMock{}, &masterRepoMock{})

	_, err := svc.ListPending(userCtx(uuid.New()), ListPendingInput{})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("ListPending() error = %v, want ErrForbidden", err)
	}
}

func TestService_ListPending_Pages(t *testing.T) {
	t.Parallel()

	pairsMock := &pairRepoMock{
		ListByStatusFunc: func(ctx context.Context, status domain.PairStatus, limit, offset int) ([]domain.SentencePair, int, error) {
			if status != domain.PairStatusPending {
				t.Errorf("status = %s, want PENDING", status)
			}
			if limit != 10 || offset != 20 {
				t.Errorf("limit/offset = %d/%d, want 10/20", limit, offset)
			}
			return []domain.SentencePair{*samplePair(uuid.New(), domain.PairStatusPending)}, 31, nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, &masterRepoMock{})

	page, err := svc.ListPending(adminCtx(uuid.New()), ListPendingInput{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("ListPending() error = %v", err)
	}
	if page.Total != 31 || page.TotalPages != 4 || page.Page != 3 {
		t.Errorf("page = %+v", page)
	}
}

func TestService_ListMine(t *testing.T) {
	t.Parallel()

	creator := uuid.New()
	pairsMock := &pairRepoMock{
		ListByCreatorFunc: func(ctx context.Context, createdBy uuid.UUID) ([]domain.SentencePair, error) {
			if createdBy != creator {
				t.Errorf("createdBy = %s, want %s", createdBy, creator)
			}
			return []domain.SentencePair{*samplePair(creator, domain.PairStatusDraft)}, nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, &masterRepoMock{})

	pairs, err := svc.ListMine(userCtx(creator))
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if len(pairs) != 1 {
		t.Errorf("pairs = %d, want 1", len(pairs))
	}
}

func TestService_DeletePair_RemovesDraftRows(t *testing.T) {
	t.Parallel()

	creator := uuid.New()
	pair := samplePair(creator, domain.PairStatusRejected)

	pairsMock := &pairRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
			return pair, nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			return nil
		},
	}
	draftMock := &draftRepoMock{
		DeleteBySentenceIDFunc: func(ctx context.Context, langPair, sentenceID string) (int64, error) {
			return 4, nil
		},
	}

	svc := newTestService(pairsMock, draftMock, &masterRepoMock{})

	if err := svc.DeletePair(userCtx(creator), pair.ID.String()); err != nil {
		t.Fatalf("DeletePair() error = %v", err)
	}

	if len(draftMock.DeleteBySentenceIDCalls()) != 1 {
		t.Errorf("draft rows not deleted")
	}
	if len(pairsMock.DeleteCalls()) != 1 {
		t.Errorf("pair not deleted")
	}
}

func TestService_DeletePair_ApprovedIsConflict(t *testing.T) {
	t.Parallel()

	creator := uuid.New()
	pair := samplePair(creator, domain.PairStatusApproved)

	pairsMock := &pairRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
			return pair, nil
		},
	}

	svc := newTestService(pairsMock, &draftRepoMock{}, &masterRepoMock{})

	err := svc.DeletePair(userCtx(creator), pair.ID.String())
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("DeletePair() error = %v, want ErrConflict", err)
	}
}
