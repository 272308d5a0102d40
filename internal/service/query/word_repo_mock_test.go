package query

import (
	"context"
	"sync"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

var _ masterRepo = &wordRepoMock{}

// wordRepoMock satisfies both wordRepo and masterRepo.
type wordRepoMock struct {
	GetByIDFunc           func(ctx context.Context, id string) (*domain.WordRecord, error)
	FindFunc              func(ctx context.Context, f domain.WordFilter) ([]domain.WordRecord, int, error)
	ListByLangFunc        func(ctx context.Context, langPair, langCode string) ([]domain.WordRecord, error)
	ListBySentenceIDsFunc func(ctx context.Context, langPair string, langCodes, sentenceIDs []string) ([]domain.WordRecord, error)
	DistinctTagValuesFunc func(ctx context.Context, langPair, langCode string, field domain.TagField) ([]string, error)
	PageSentenceIDsFunc   func(ctx context.Context, langPair, langCode string, page, limit int) ([]string, int, error)

	calls struct {
		Find []struct {
			Ctx    context.Context
			Filter domain.WordFilter
		}
		ListBySentenceIDs []struct {
			Ctx         context.Context
			LangPair    string
			LangCodes   []string
			SentenceIDs []string
		}
	}
	lockFind              sync.RWMutex
	lockListBySentenceIDs sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, id string) (*domain.WordRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *wordRepoMock) Find(ctx context.Context, f domain.WordFilter) ([]domain.WordRecord, int, error) {
	if mock.FindFunc == nil {
		panic("wordRepoMock.FindFunc: method is nil but wordRepo.Find was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.WordFilter
	}{Ctx: ctx, Filter: f}
	mock.lockFind.Lock()
	mock.calls.Find = append(mock.calls.Find, callInfo)
	mock.lockFind.Unlock()
	return mock.FindFunc(ctx, f)
}

func (mock *wordRepoMock) FindCalls() []struct {
	Ctx    context.Context
	Filter domain.WordFilter
} {
	mock.lockFind.RLock()
	calls := mock.calls.Find
	mock.lockFind.RUnlock()
	return calls
}

func (mock *wordRepoMock) ListByLang(ctx context.Context, langPair, langCode string) ([]domain.WordRecord, error) {
	if mock.ListByLangFunc == nil {
		panic("wordRepoMock.ListByLangFunc: method is nil but wordRepo.ListByLang was just called")
	}
	return mock.ListByLangFunc(ctx, langPair, langCode)
}

func (mock *wordRepoMock) ListBySentenceIDs(ctx context.Context, langPair string, langCodes, sentenceIDs []string) ([]domain.WordRecord, error) {
	if mock.ListBySentenceIDsFunc == nil {
		panic("wordRepoMock.ListBySentenceIDsFunc: method is nil but wordRepo.ListBySentenceIDs was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		LangPair    string
		LangCodes   []string
		SentenceIDs []string
	}{Ctx: ctx, LangPair: langPair, LangCodes: langCodes, SentenceIDs: sentenceIDs}
	mock.lockListBySentenceIDs.Lock()
	mock.calls.ListBySentenceIDs = append(mock.calls.ListBySentenceIDs, callInfo)
	mock.lockListBySentenceIDs.Unlock()
	return mock.ListBySentenceIDsFunc(ctx, langPair, langCodes, sentenceIDs)
}

func (mock *wordRepoMock) ListBySentenceIDsCalls() []struct {
	Ctx         context.Context
	LangPair    string
	LangCodes   []string
	SentenceIDs []string
} {
	mock.lockListBySentenceIDs.RLock()
	calls := mock.calls.ListBySentenceIDs
	mock.lockListBySentenceIDs.RUnlock()
	return calls
}

func (mock *wordRepoMock) DistinctTagValues(ctx context.Context, langPair, langCode string, field domain.TagField) ([]string, error) {
	if mock.DistinctTagValuesFunc == nil {
		panic("wordRepoMock.DistinctTagValuesFunc: method is nil but wordRepo.DistinctTagValues was just called")
	}
	return mock.DistinctTagValuesFunc(ctx, langPair, langCode, field)
}

func (mock *wordRepoMock) PageSentenceIDs(ctx context.Context, langPair, langCode string, page, limit int) ([]string, int, error) {
	if mock.PageSentenceIDsFunc == nil {
		panic("wordRepoMock.PageSentenceIDsFunc: method is nil but masterRepo.PageSentenceIDs was just called")
	}
	return mock.PageSentenceIDsFunc(ctx, langPair, langCode, page, limit)
}
