package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praditya/siaga/internal/pkg/models"
	"github.com/praditya/siaga/services/monitor"
	"github.com/praditya/siaga/services/monitor/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Storage: models.StorageConfig{
			PublicBaseURL: "https://storage.example.com/object/public/videos/",
			ProxyPath:     "/video-proxy",
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func makeAccident(severity, status string, ts time.Time) models.Accident {
	return models.Accident{
		ID:        uuid.New(),
		CameraID:  "cam-01",
		Latitude:  -6.2,
		Longitude: 106.8,
		Severity:  severity,
		Timestamp: ts,
		Status:    status,
	}
}

func TestRefresh_SnapshotOrderedNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)

	now := time.Now()
	accidents := []models.Accident{
		makeAccident("severe", models.AccidentStatusPending, now),
		makeAccident("moderate", models.AccidentStatusPending, now.Add(-1*time.Minute)),
		makeAccident("minor", models.AccidentStatusResponding, now.Add(-2*time.Minute)),
	}
	mockRepo.EXPECT().GetAccidents(gomock.Any()).Return(accidents, nil)

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())
	uc.refresh(context.Background())

	snapshot := uc.Snapshot()
	require.Len(t, snapshot, 3)
	assert.True(t, sort.SliceIsSorted(snapshot, func(i, j int) bool {
		return snapshot[i].Timestamp.After(snapshot[j].Timestamp)
	}))
}

func TestRefresh_FailureLeavesSnapshotUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)

	accidents := []models.Accident{
		makeAccident("severe", models.AccidentStatusPending, time.Now()),
	}
	gomock.InOrder(
		mockRepo.EXPECT().GetAccidents(gomock.Any()).Return(accidents, nil),
		mockRepo.EXPECT().GetAccidents(gomock.Any()).Return(nil, errors.New("connection refused")),
	)

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())
	uc.refresh(context.Background())
	before := uc.Snapshot()

	uc.refresh(context.Background())
	after := uc.Snapshot()

	assert.Equal(t, before, after)
}

func TestAcceptEmergency_WriteThenInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)

	id := uuid.New()
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), id, models.AccidentStatusResponding).Return(nil)
	mockGW.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())
	uc.AcceptEmergency(context.Background(), id)

	// The snapshot must be marked stale even though no coordinator is running
	select {
	case <-uc.dirty:
	default:
		t.Fatal("expected a pending invalidation signal")
	}
}

func TestAcceptEmergency_WriteFailureStillInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)

	id := uuid.New()
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), id, models.AccidentStatusResponding).
		Return(errors.New("write failed"))
	// No change event is published for a failed write

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())
	uc.AcceptEmergency(context.Background(), id)

	select {
	case <-uc.dirty:
	default:
		t.Fatal("expected a pending invalidation signal")
	}
}

func TestAcceptEmergency_ScenarioPreservesRelativeOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)

	now := time.Now()
	a := makeAccident("severe", models.AccidentStatusPending, now)
	b := makeAccident("minor", models.AccidentStatusResponding, now.Add(-5*time.Minute))

	accepted := a
	accepted.Status = models.AccidentStatusResponding

	gomock.InOrder(
		mockRepo.EXPECT().GetAccidents(gomock.Any()).Return([]models.Accident{a, b}, nil),
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), a.ID, models.AccidentStatusResponding).Return(nil),
		mockRepo.EXPECT().GetAccidents(gomock.Any()).Return([]models.Accident{accepted, b}, nil),
	)
	mockGW.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())
	uc.refresh(context.Background())

	uc.AcceptEmergency(context.Background(), a.ID)
	uc.refresh(context.Background())

	snapshot := uc.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, a.ID, snapshot[0].ID)
	assert.Equal(t, models.AccidentStatusResponding, snapshot[0].Status)
	assert.Equal(t, b.ID, snapshot[1].ID)
	assert.Equal(t, models.AccidentStatusResponding, snapshot[1].Status)
}

func TestAcceptEmergency_UnknownIDLeavesSnapshotUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)

	now := time.Now()
	accidents := []models.Accident{
		makeAccident("severe", models.AccidentStatusPending, now),
	}
	unknown := uuid.New()

	gomock.InOrder(
		mockRepo.EXPECT().GetAccidents(gomock.Any()).Return(accidents, nil),
		// Zero rows matched: the repository reports success
		mockRepo.EXPECT().UpdateStatus(gomock.Any(), unknown, models.AccidentStatusResponding).Return(nil),
		mockRepo.EXPECT().GetAccidents(gomock.Any()).Return(accidents, nil),
	)
	mockGW.EXPECT().PublishChange(gomock.Any(), gomock.Any()).Return(nil)

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())
	uc.refresh(context.Background())
	before := uc.Snapshot()

	uc.AcceptEmergency(context.Background(), unknown)
	uc.refresh(context.Background())

	assert.Equal(t, before, uc.Snapshot())
}

func TestStartStop_ExactlyOneSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)
	mockSub := mocks.NewMockSubscription(ctrl)

	mockRepo.EXPECT().GetAccidents(gomock.Any()).Return([]models.Accident{}, nil).AnyTimes()

	var handler func(models.ChangeEvent)
	mockGW.EXPECT().SubscribeChanges(gomock.Any()).
		DoAndReturn(func(h func(models.ChangeEvent)) (monitor.Subscription, error) {
			handler = h
			return mockSub, nil
		}).Times(1)
	mockSub.EXPECT().Unsubscribe().Return(nil).Times(1)

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())
	require.NoError(t, uc.Start(context.Background()))

	// Any number of notifications shares the single subscription
	for i := 0; i < 5; i++ {
		handler(models.ChangeEvent{Table: "accidents"})
	}

	uc.Stop()
}

func TestStart_SubscriptionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)

	mockRepo.EXPECT().GetAccidents(gomock.Any()).Return([]models.Accident{}, nil)
	mockGW.EXPECT().SubscribeChanges(gomock.Any()).Return(nil, errors.New("nats down"))

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())
	err := uc.Start(context.Background())
	assert.Error(t, err)

	// A failed start must leave the monitor restartable
	mockRepo.EXPECT().GetAccidents(gomock.Any()).Return([]models.Accident{}, nil).AnyTimes()
	mockSub := mocks.NewMockSubscription(ctrl)
	mockGW.EXPECT().SubscribeChanges(gomock.Any()).Return(mockSub, nil)
	mockSub.EXPECT().Unsubscribe().Return(nil)

	require.NoError(t, uc.Start(context.Background()))
	uc.Stop()
}

func TestRefresh_SupersededFetchDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)

	now := time.Now()
	stale := []models.Accident{makeAccident("minor", models.AccidentStatusPending, now.Add(-time.Hour))}
	fresh := []models.Accident{makeAccident("severe", models.AccidentStatusPending, now)}

	inFlight := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		mockRepo.EXPECT().GetAccidents(gomock.Any()).
			DoAndReturn(func(context.Context) ([]models.Accident, error) {
				close(inFlight)
				<-release
				return stale, nil
			}),
		mockRepo.EXPECT().GetAccidents(gomock.Any()).Return(fresh, nil),
	)

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())

	firstDone := make(chan struct{})
	go func() {
		uc.refresh(context.Background())
		close(firstDone)
	}()

	<-inFlight
	uc.refresh(context.Background())

	close(release)
	<-firstDone

	snapshot := uc.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, fresh[0].ID, snapshot[0].ID, "stale fetch must not replace a newer snapshot")
}

func TestInvalidate_SignalsCoalesce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewMonitorUC(mocks.NewMockAccidentRepo(ctrl), mocks.NewMockMonitorGW(ctrl), testConfig())

	uc.Invalidate()
	uc.Invalidate()
	uc.Invalidate()

	<-uc.dirty
	select {
	case <-uc.dirty:
		t.Fatal("invalidation signals must coalesce into a single slot")
	default:
	}
}

func TestListAccidents_FilterRouting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)
	uc := NewMonitorUC(mockRepo, mockGW, testConfig())

	pending := []models.Accident{makeAccident("severe", models.AccidentStatusPending, time.Now())}
	mockRepo.EXPECT().GetAccidentsByStatus(gomock.Any(), models.AccidentStatusPending).Return(pending, nil)

	got, err := uc.ListAccidents(context.Background(), "pending")
	require.NoError(t, err)
	assert.Equal(t, pending, got)

	uploaded := []models.Accident{makeAccident("severe", models.AccidentStatusPending, time.Now())}
	mockRepo.EXPECT().GetUploadedAccidents(gomock.Any()).Return(uploaded, nil)

	got, err = uc.ListAccidents(context.Background(), "uploaded")
	require.NoError(t, err)
	assert.Equal(t, uploaded, got)

	// Empty filter serves the snapshot without touching the repository
	got, err = uc.ListAccidents(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVideoURL_RewritesStorageURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)
	uc := NewMonitorUC(mockRepo, mockGW, testConfig())

	id := uuid.New()
	accident := makeAccident("severe", models.AccidentStatusPending, time.Now())
	accident.ID = id
	accident.VideoURL = strPtr("https://storage.example.com/object/public/videos/clip-42.mp4")

	mockRepo.EXPECT().GetAccidentByID(gomock.Any(), id).Return(&accident, nil)

	url, err := uc.VideoURL(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "/video-proxy/clip-42.mp4", url)
}

func TestVideoURL_MissingClip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)
	uc := NewMonitorUC(mockRepo, mockGW, testConfig())

	id := uuid.New()
	accident := makeAccident("severe", models.AccidentStatusPending, time.Now())
	accident.ID = id

	mockRepo.EXPECT().GetAccidentByID(gomock.Any(), id).Return(&accident, nil)

	_, err := uc.VideoURL(context.Background(), id)
	assert.ErrorIs(t, err, monitor.ErrAccidentNotFound)
}

func TestVideoURL_ForeignURLPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)
	uc := NewMonitorUC(mockRepo, mockGW, testConfig())

	id := uuid.New()
	accident := makeAccident("severe", models.AccidentStatusPending, time.Now())
	accident.ID = id
	accident.VideoURL = strPtr("https://cdn.elsewhere.example/clip.mp4")

	mockRepo.EXPECT().GetAccidentByID(gomock.Any(), id).Return(&accident, nil)

	url, err := uc.VideoURL(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.elsewhere.example/clip.mp4", url)
}

func TestOnSnapshotReplaced_NotifiedAfterRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAccidentRepo(ctrl)
	mockGW := mocks.NewMockMonitorGW(ctrl)

	accidents := []models.Accident{makeAccident("severe", models.AccidentStatusPending, time.Now())}
	gomock.InOrder(
		mockRepo.EXPECT().GetAccidents(gomock.Any()).Return(accidents, nil),
		mockRepo.EXPECT().GetAccidents(gomock.Any()).Return(nil, errors.New("boom")),
	)

	uc := NewMonitorUC(mockRepo, mockGW, testConfig())

	var notified int
	uc.OnSnapshotReplaced(func(got []models.Accident) {
		notified++
		assert.Len(t, got, 1)
	})

	uc.refresh(context.Background())
	uc.refresh(context.Background())

	assert.Equal(t, 1, notified, "listener fires on success only")
}
