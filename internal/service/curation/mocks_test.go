package curation

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

var _ pairRepo = &pairRepoMock{}

type pairRepoMock struct {
	CreateFunc          func(ctx context.Context, p *domain.SentencePair) (*domain.SentencePair, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error)
	GetBySentenceIDFunc func(ctx context.Context, langPair, sentenceID string) (*domain.SentencePair, error)
	ListByCreatorFunc   func(ctx context.Context, createdBy uuid.UUID) ([]domain.SentencePair, error)
	ListByStatusFunc    func(ctx context.Context, status domain.PairStatus, limit, offset int) ([]domain.SentencePair, int, error)
	UpdateStatusFunc    func(ctx context.Context, id uuid.UUID, status domain.PairStatus, actor *uuid.UUID) (*domain.SentencePair, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Pair *domain.SentencePair
		}
		UpdateStatus []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Status domain.PairStatus
			Actor  *uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockUpdateStatus sync.RWMutex
	lockDelete       sync.RWMutex
}

func (mock *pairRepoMock) Create(ctx context.Context, p *domain.SentencePair) (*domain.SentencePair, error) {
	if mock.CreateFunc == nil {
		panic("pairRepoMock.CreateFunc: method is nil but pairRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Pair *domain.SentencePair
	}{Ctx: ctx, Pair: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *pairRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Pair *domain.SentencePair
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *pairRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.SentencePair, error) {
	if mock.GetByIDFunc == nil {
		panic("pairRepoMock.GetByIDFunc: method is nil but pairRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *pairRepoMock) GetBySentenceID(ctx context.Context, langPair, sentenceID string) (*domain.SentencePair, error) {
	if mock.GetBySentenceIDFunc == nil {
		panic("pairRepoMock.GetBySentenceIDFunc: method is nil but pairRepo.GetBySentenceID was just called")
	}
	return mock.GetBySentenceIDFunc(ctx, langPair, sentenceID)
}

func (mock *pairRepoMock) ListByCreator(ctx context.Context, createdBy uuid.UUID) ([]domain.SentencePair, error) {
	if mock.ListByCreatorFunc == nil {
		panic("pairRepoMock.ListByCreatorFunc: method is nil but pairRepo.ListByCreator was just called")
	}
	return mock.ListByCreatorFunc(ctx, createdBy)
}

func (mock *pairRepoMock) ListByStatus(ctx context.Context, status domain.PairStatus, limit, offset int) ([]domain.SentencePair, int, error) {
	if mock.ListByStatusFunc == nil {
		panic("pairRepoMock.ListByStatusFunc: method is nil but pairRepo.ListByStatus was just called")
	}
	return mock.ListByStatusFunc(ctx, status, limit, offset)
}

func (mock *pairRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PairStatus, actor *uuid.UUID) (*domain.SentencePair, error) {
	if mock.UpdateStatusFunc == nil {
		panic("pairRepoMock.UpdateStatusFunc: method is nil but pairRepo.UpdateStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Status domain.PairStatus
		Actor  *uuid.UUID
	}{Ctx: ctx, ID: id, Status: status, Actor: actor}
	mock.lockUpdateStatus.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, callInfo)
	mock.lockUpdateStatus.Unlock()
	return mock.UpdateStatusFunc(ctx, id, status, actor)
}

func (mock *pairRepoMock) UpdateStatusCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Status domain.PairStatus
	Actor  *uuid.UUID
} {
	mock.lockUpdateStatus.RLock()
	calls := mock.calls.UpdateStatus
	mock.lockUpdateStatus.RUnlock()
	return calls
}

func (mock *pairRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("pairRepoMock.DeleteFunc: method is nil but pairRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *pairRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ draftRepo = &draftRepoMock{}

type draftRepoMock struct {
	GetByIDFunc            func(ctx context.Context, id string) (*domain.WordRecord, error)
	BulkInsertFunc         func(ctx context.Context, recs []domain.WordRecord) (int64, error)
	UpdateAnnotationsFunc  func(ctx context.Context, rec *domain.WordRecord) error
	DeleteBySentenceIDFunc func(ctx context.Context, langPair, sentenceID string) (int64, error)

	calls struct {
		BulkInsert []struct {
			Ctx  context.Context
			Recs []domain.WordRecord
		}
		UpdateAnnotations []struct {
			Ctx context.Context
			Rec *domain.WordRecord
		}
		DeleteBySentenceID []struct {
			Ctx        context.Context
			LangPair   string
			SentenceID string
		}
	}
	lockBulkInsert         sync.RWMutex
	lockUpdateAnnotations  sync.RWMutex
	lockDeleteBySentenceID sync.RWMutex
}

func (mock *draftRepoMock) GetByID(ctx context.Context, id string) (*domain.WordRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("draftRepoMock.GetByIDFunc: method is nil but draftRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *draftRepoMock) UpdateAnnotations(ctx context.Context, rec *domain.WordRecord) error {
	if mock.UpdateAnnotationsFunc == nil {
		panic("draftRepoMock.UpdateAnnotationsFunc: method is nil but draftRepo.UpdateAnnotations was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.WordRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockUpdateAnnotations.Lock()
	mock.calls.UpdateAnnotations = append(mock.calls.UpdateAnnotations, callInfo)
	mock.lockUpdateAnnotations.Unlock()
	return mock.UpdateAnnotationsFunc(ctx, rec)
}

func (mock *draftRepoMock) UpdateAnnotationsCalls() []struct {
	Ctx context.Context
	Rec *domain.WordRecord
} {
	mock.lockUpdateAnnotations.RLock()
	calls := mock.calls.UpdateAnnotations
	mock.lockUpdateAnnotations.RUnlock()
	return calls
}

func (mock *draftRepoMock) BulkInsert(ctx context.Context, recs []domain.WordRecord) (int64, error) {
	if mock.BulkInsertFunc == nil {
		panic("draftRepoMock.BulkInsertFunc: method is nil but draftRepo.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Recs []domain.WordRecord
	}{Ctx: ctx, Recs: recs}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, recs)
}

func (mock *draftRepoMock) BulkInsertCalls() []struct {
	Ctx  context.Context
	Recs []domain.WordRecord
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}

func (mock *draftRepoMock) DeleteBySentenceID(ctx context.Context, langPair, sentenceID string) (int64, error) {
	if mock.DeleteBySentenceIDFunc == nil {
		panic("draftRepoMock.DeleteBySentenceIDFunc: method is nil but draftRepo.DeleteBySentenceID was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		LangPair   string
		SentenceID string
	}{Ctx: ctx, LangPair: langPair, SentenceID: sentenceID}
	mock.lockDeleteBySentenceID.Lock()
	mock.calls.DeleteBySentenceID = append(mock.calls.DeleteBySentenceID, callInfo)
	mock.lockDeleteBySentenceID.Unlock()
	return mock.DeleteBySentenceIDFunc(ctx, langPair, sentenceID)
}

func (mock *draftRepoMock) DeleteBySentenceIDCalls() []struct {
	Ctx        context.Context
	LangPair   string
	SentenceID string
} {
	mock.lockDeleteBySentenceID.RLock()
	calls := mock.calls.DeleteBySentenceID
	mock.lockDeleteBySentenceID.RUnlock()
	return calls
}

var _ masterRepo = &masterRepoMock{}

type masterRepoMock struct {
	InsertFromDraftFunc func(ctx context.Context, sentenceID, langPair string, approvedBy uuid.UUID) (int64, error)

	calls struct {
		InsertFromDraft []struct {
			Ctx        context.Context
			SentenceID string
			LangPair   string
			ApprovedBy uuid.UUID
		}
	}
	lockInsertFromDraft sync.RWMutex
}

func (mock *masterRepoMock) InsertFromDraft(ctx context.Context, sentenceID, langPair string, approvedBy uuid.UUID) (int64, error) {
	if mock.InsertFromDraftFunc == nil {
		panic("masterRepoMock.InsertFromDraftFunc: method is nil but masterRepo.InsertFromDraft was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		SentenceID string
		LangPair   string
		ApprovedBy uuid.UUID
	}{Ctx: ctx, SentenceID: sentenceID, LangPair: langPair, ApprovedBy: approvedBy}
	mock.lockInsertFromDraft.Lock()
	mock.calls.InsertFromDraft = append(mock.calls.InsertFromDraft, callInfo)
	mock.lockInsertFromDraft.Unlock()
	return mock.InsertFromDraftFunc(ctx, sentenceID, langPair, approvedBy)
}

func (mock *masterRepoMock) InsertFromDraftCalls() []struct {
	Ctx        context.Context
	SentenceID string
	LangPair   string
	ApprovedBy uuid.UUID
} {
	mock.lockInsertFromDraft.RLock()
	calls := mock.calls.InsertFromDraft
	mock.lockInsertFromDraft.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, with no real transaction.
type txManagerMock struct{}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
