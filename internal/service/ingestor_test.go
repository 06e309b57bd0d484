package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"content_syncer/internal/domain"
	"content_syncer/internal/service/mocks"
)

type IngestorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	contents  *mocks.MockContentStore
	stats     *mocks.MockContentStatsStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	ingestor *ContentIngestor
}

func (s *IngestorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.contents = mocks.NewMockContentStore(s.ctrl)
	s.stats = mocks.NewMockContentStatsStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.ingestor = NewContentIngestor(s.contents, s.stats, s.txManager, s.publisher, logger)
}

func (s *IngestorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestIngestorTestSuite(t *testing.T) {
	suite.Run(t, new(IngestorTestSuite))
}

// passthroughTx runs the transactional body on the same context, the
// way every test here wants it.
func (s *IngestorTestSuite) passthroughTx(times int) {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Times(times).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *IngestorTestSuite) TestIngestBatch_NewItems() {
	ctx := context.Background()
	items := makeItems(2)
	items[0].Stats = &domain.ContentStats{ViewCount: 100, LikeCount: 5}

	s.contents.EXPECT().GetExistingByExternalIDs(ctx, int64(7), []string{"item-0", "item-1"}).
		Return(map[string]time.Time{}, nil)

	s.passthroughTx(2)
	var nextID int64
	s.contents.EXPECT().Upsert(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, item *domain.ContentItem) (int64, error) {
			s.Equal(int64(7), item.SourceID)
			nextID++
			return nextID, nil
		},
	)
	s.stats.EXPECT().Upsert(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, st *domain.ContentStats) error {
			s.Equal(int64(1), st.ContentID)
			s.Equal(int64(100), st.ViewCount)
			s.False(st.CollectedAt.IsZero())
			return nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil).Times(2)

	ingested, failed, err := s.ingestor.IngestBatch(ctx, 7, items)

	s.NoError(err)
	s.Equal(2, ingested)
	s.Equal(0, failed)
}

// Re-ingesting a page the platform already gave us is an update, not a
// duplicate: the existing lookup flips the published action.
func (s *IngestorTestSuite) TestIngestBatch_ExistingItemsPublishUpdate() {
	ctx := context.Background()
	items := makeItems(1)

	s.contents.EXPECT().GetExistingByExternalIDs(ctx, int64(7), []string{"item-0"}).
		Return(map[string]time.Time{"item-0": time.Now().Add(-time.Hour)}, nil)

	s.passthroughTx(1)
	s.contents.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(42), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), false).Return(nil)

	ingested, failed, err := s.ingestor.IngestBatch(ctx, 7, items)

	s.NoError(err)
	s.Equal(1, ingested)
	s.Equal(0, failed)
}

// Scenario: one corrupt item in a page of 50 is counted failed and
// skipped; the other 49 land.
func (s *IngestorTestSuite) TestIngestBatch_MalformedItemSkipped() {
	ctx := context.Background()
	items := makeItems(50)
	items[13].Title = "" // corrupt

	s.contents.EXPECT().GetExistingByExternalIDs(ctx, int64(7), gomock.Any()).
		Return(map[string]time.Time{}, nil)

	s.passthroughTx(49)
	s.contents.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(1), nil).Times(49)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil).Times(49)

	ingested, failed, err := s.ingestor.IngestBatch(ctx, 7, items)

	s.NoError(err)
	s.Equal(49, ingested)
	s.Equal(1, failed)
}

func (s *IngestorTestSuite) TestIngestBatch_MissingExternalID() {
	ctx := context.Background()
	items := makeItems(2)
	items[0].ExternalID = ""

	// The blank id never reaches the existence query.
	s.contents.EXPECT().GetExistingByExternalIDs(ctx, int64(7), []string{"item-1"}).
		Return(map[string]time.Time{}, nil)

	s.passthroughTx(1)
	s.contents.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(1), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)

	ingested, failed, err := s.ingestor.IngestBatch(ctx, 7, items)

	s.NoError(err)
	s.Equal(1, ingested)
	s.Equal(1, failed)
}

// A per-item storage failure is counted, not fatal.
func (s *IngestorTestSuite) TestIngestBatch_UpsertFailureCounted() {
	ctx := context.Background()
	items := makeItems(2)

	s.contents.EXPECT().GetExistingByExternalIDs(ctx, int64(7), gomock.Any()).
		Return(map[string]time.Time{}, nil)

	s.passthroughTx(2)
	call := 0
	s.contents.EXPECT().Upsert(ctx, gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, _ *domain.ContentItem) (int64, error) {
			call++
			if call == 1 {
				return 0, errors.New("deadlock detected")
			}
			return 2, nil
		},
	)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)

	ingested, failed, err := s.ingestor.IngestBatch(ctx, 7, items)

	s.NoError(err)
	s.Equal(1, ingested)
	s.Equal(1, failed)
}

// A broker hiccup is logged and swallowed; the item still counts as
// ingested.
func (s *IngestorTestSuite) TestIngestBatch_PublishFailureNonFatal() {
	ctx := context.Background()
	items := makeItems(1)

	s.contents.EXPECT().GetExistingByExternalIDs(ctx, int64(7), gomock.Any()).
		Return(map[string]time.Time{}, nil)

	s.passthroughTx(1)
	s.contents.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(1), nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(errors.New("channel closed"))

	ingested, failed, err := s.ingestor.IngestBatch(ctx, 7, items)

	s.NoError(err)
	s.Equal(1, ingested)
	s.Equal(0, failed)
}

// The existence lookup failing before any item was attempted is a
// batch-level error.
func (s *IngestorTestSuite) TestIngestBatch_ExistenceQueryError() {
	ctx := context.Background()

	s.contents.EXPECT().GetExistingByExternalIDs(ctx, int64(7), gomock.Any()).
		Return(nil, errors.New("db down"))

	ingested, failed, err := s.ingestor.IngestBatch(ctx, 7, makeItems(3))

	s.Error(err)
	s.Equal(0, ingested)
	s.Equal(0, failed)
}

func (s *IngestorTestSuite) TestIngestBatch_EmptyPage() {
	ingested, failed, err := s.ingestor.IngestBatch(context.Background(), 7, nil)

	s.NoError(err)
	s.Equal(0, ingested)
	s.Equal(0, failed)
}

// The publisher is optional wiring.
func (s *IngestorTestSuite) TestIngestBatch_NilPublisher() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	ingestor := NewContentIngestor(s.contents, s.stats, s.txManager, nil, logger)

	s.contents.EXPECT().GetExistingByExternalIDs(ctx, int64(7), gomock.Any()).
		Return(map[string]time.Time{}, nil)
	s.passthroughTx(1)
	s.contents.EXPECT().Upsert(ctx, gomock.Any()).Return(int64(1), nil)

	ingested, failed, err := ingestor.IngestBatch(ctx, 7, makeItems(1))

	s.NoError(err)
	s.Equal(1, ingested)
	s.Equal(0, failed)
}
