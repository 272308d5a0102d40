package ingest

import (
	"context"
	"sync"

	"github.com/vncorpora/bicorpus-backend/internal/domain"
)

var _ rowStore = &rowStoreMock{}

type rowStoreMock struct {
	BulkInsertFunc func(ctx context.Context, recs []domain.WordRecord) (int64, error)
	ListByLangFunc func(ctx context.Context, langPair, langCode string) ([]domain.WordRecord, error)

	calls struct {
		BulkInsert []struct {
			Ctx  context.Context
			Recs []domain.WordRecord
		}
		ListByLang []struct {
			Ctx      context.Context
			LangPair string
			LangCode string
		}
	}
	lockBulkInsert sync.RWMutex
	lockListByLang sync.RWMutex
}

func (mock *rowStoreMock) BulkInsert(ctx context.Context, recs []domain.WordRecord) (int64, error) {
	if mock.BulkInsertFunc == nil {
		panic("rowStoreMock.BulkInsertFunc: method is nil but rowStore.BulkInsert was just called")
	}
	copied := make([]domain.WordRecord, len(recs))
	copy(copied, recs)
	callInfo := struct {
		Ctx  context.Context
		Recs []domain.WordRecord
	}{Ctx: ctx, Recs: copied}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, recs)
}

func (mock *rowStoreMock) BulkInsertCalls() []struct {
	Ctx  context.Context
	Recs []domain.WordRecord
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}

func (mock *rowStoreMock) ListByLang(ctx context.Context, langPair, langCode string) ([]domain.WordRecord, error) {
	if mock.ListByLangFunc == nil {
		panic("rowStoreMock.ListByLangFunc: method is nil but rowStore.ListByLang was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LangPair string
		LangCode string
	}{Ctx: ctx, LangPair: langPair, LangCode: langCode}
	mock.lockListByLang.Lock()
	mock.calls.ListByLang = append(mock.calls.ListByLang, callInfo)
	mock.lockListByLang.Unlock()
	return mock.ListByLangFunc(ctx, langPair, langCode)
}

func (mock *rowStoreMock) ListByLangCalls() []struct {
	Ctx      context.Context
	LangPair string
	LangCode string
} {
	mock.lockListByLang.RLock()
	calls := mock.calls.ListByLang
	mock.lockListByLang.RUnlock()
	return calls
}
