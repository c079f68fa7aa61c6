package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DanRulev/sentrack.git/internal/async"
	"github.com/DanRulev/sentrack.git/internal/models"
	mock_service "github.com/DanRulev/sentrack.git/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testUser  int64 = 1
	testOwner       = "5f0c3a53-2f7e-4c43-9b7e-0a4b1b0b6a11"

	id1 = "0b1c6a4e-8d4f-4a57-9f39-6a2f7a1d1e01"
	id2 = "0b1c6a4e-8d4f-4a57-9f39-6a2f7a1d1e02"
	id3 = "0b1c6a4e-8d4f-4a57-9f39-6a2f7a1d1e03"
)

var seededDoc = fmt.Sprintf(`{
	"meta": {"title": "seed", "start": "2024-03-01", "end": "2024-03-31", "goal": 310},
	"rows": [
		{"key": "k1", "id": %q, "no": 1, "ko": "하나", "en": "one", "history": ["O"], "count": 1},
		{"key": "k2", "id": %q, "no": 2, "ko": "둘", "en": "two", "history": [], "count": 0},
		{"key": "k3", "id": %q, "no": 3, "ko": "셋", "en": "three", "history": [], "count": 0},
		{"key": "p4", "no": 4, "ko": "넷", "en": "four", "history": [], "count": 0}
	]
}`, id1, id2, id3)

type practiceMocks struct {
	repo     *mock_service.MockRowsRI
	sessions *mock_service.MockSessionCache
	notifier *mock_service.MockNotifier
}

func newPracticeServiceMock(t *testing.T, ctrl *gomock.Controller, loggedIn bool, seed string, setupMock func(practiceMocks)) (*PracticeS, *memLocal) {
	t.Helper()

	m := practiceMocks{
		repo:     mock_service.NewMockRowsRI(ctrl),
		sessions: mock_service.NewMockSessionCache(ctrl),
		notifier: mock_service.NewMockNotifier(ctrl),
	}
	if loggedIn {
		m.sessions.EXPECT().GetSession(testUser).Return(models.Account{ID: testOwner, Email: "a@b.c"}, true).AnyTimes()
	} else {
		m.sessions.EXPECT().GetSession(testUser).Return(models.Account{}, false).AnyTimes()
	}
	if setupMock != nil {
		setupMock(m)
	}

	local := newMemLocal()
	if seed != "" {
		local.data["app:v1:1"] = seed
	}

	p := NewPracticeService(newTestWorkspaces(local), m.repo, m.sessions, m.notifier, async.NewGroup(time.Second), zap.NewNop())
	p.now = func() time.Time { return testNow }
	return p, local
}

func rowKeys(rows []models.Row) []string {
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Key
	}
	return keys
}

func assertContiguous(t *testing.T, rows []models.Row) {
	t.Helper()
	for i, r := range rows {
		assert.Equal(t, i+1, r.No, "row %s", r.Key)
	}
}

func TestPracticeS_AddRow(t *testing.T) {
	t.Parallel()

	newID := "9e3a5d7c-1111-4b2a-8c3d-2e4f6a8b0c1d"
	remoteErr := errors.New("insert refused")

	tests := []struct {
		name     string
		loggedIn bool
		f        func(practiceMocks)
		wantErr  error
		wantLen  int
		wantID   string
	}{
		{
			name:     "local only when logged out",
			loggedIn: false,
			wantLen:  5,
		},
		{
			name:     "confirmed with the remote id",
			loggedIn: true,
			f: func(m practiceMocks) {
				m.repo.EXPECT().InsertRow(gomock.Any(), testOwner, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, row models.Row) (string, error) {
						assert.Equal(t, 5, row.No)
						assert.Equal(t, "다섯", row.Ko)
						assert.Empty(t, row.ID)
						return newID, nil
					})
			},
			wantLen: 5,
			wantID:  newID,
		},
		{
			name:     "rolled back on remote failure",
			loggedIn: true,
			f: func(m practiceMocks) {
				m.repo.EXPECT().InsertRow(gomock.Any(), testOwner, gomock.Any()).Return("", remoteErr)
				m.notifier.EXPECT().Alert(testUser, gomock.Any())
			},
			wantErr: remoteErr,
			wantLen: 4,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, local := newPracticeServiceMock(t, ctrl, tt.loggedIn, seededDoc, tt.f)
			ctx := context.Background()
			before := p.ws.Get(ctx, testUser).Snapshot()

			row, task, err := p.AddRow(ctx, testUser, "다섯", "five")
			require.NoError(t, err)
			assert.Equal(t, 5, row.No)
			assert.Empty(t, row.ID)
			assert.Equal(t, []models.Outcome{}, row.History)
			assert.Zero(t, row.Count)

			assert.ErrorIs(t, task.Wait(), tt.wantErr)

			after := p.ws.Get(ctx, testUser).Snapshot()
			require.Len(t, after.Rows, tt.wantLen)
			assertContiguous(t, after.Rows)
			assert.Equal(t, after, local.stored(t, "app:v1:1"))

			if tt.wantLen == len(before.Rows) {
				assert.Equal(t, before, after)
				return
			}
			added, err := p.Row(ctx, testUser, row.Key)
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, added.ID)
		})
	}
}

func TestPracticeS_AddRow_DeletedBeforeConfirm(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orphan := "9e3a5d7c-2222-4b2a-8c3d-2e4f6a8b0c1d"
	release := make(chan struct{})

	p, _ := newPracticeServiceMock(t, ctrl, true, "", func(m practiceMocks) {
		m.repo.EXPECT().InsertRow(gomock.Any(), testOwner, gomock.Any()).
			DoAndReturn(func(context.Context, string, models.Row) (string, error) {
				<-release
				return orphan, nil
			})
		m.repo.EXPECT().ReorderRows(gomock.Any(), testOwner, []models.RowOrder{}).Return(nil)
		m.repo.EXPECT().DeleteRow(gomock.Any(), testOwner, orphan).Return(nil)
	})
	ctx := context.Background()

	row, addTask, err := p.AddRow(ctx, testUser, "임시", "temp")
	require.NoError(t, err)

	delTask, err := p.DeleteRow(ctx, testUser, row.Key)
	require.NoError(t, err)
	require.NoError(t, delTask.Wait())

	close(release)
	require.NoError(t, addTask.Wait())

	assert.Zero(t, p.ws.Get(ctx, testUser).Len())
}

func TestPracticeS_RemoteTimeout(t *testing.T) {
	t.Parallel()

	blockUntilDone := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}
	remoteRows := []models.Row{{ID: id1, No: 1, Ko: "하나", En: "one", History: []models.Outcome{}}}

	tests := []struct {
		name     string
		f        func(practiceMocks)
		run      func(ctx context.Context, p *PracticeS) (*async.Task, error)
		wantKeys []string
		wantIDs  []string
	}{
		{
			name: "timed out insert is rolled back on disk",
			f: func(m practiceMocks) {
				m.repo.EXPECT().InsertRow(gomock.Any(), testOwner, gomock.Any()).
					DoAndReturn(func(ctx context.Context, _ string, _ models.Row) (string, error) {
						return "", blockUntilDone(ctx)
					})
				m.notifier.EXPECT().Alert(testUser, gomock.Any())
			},
			run: func(ctx context.Context, p *PracticeS) (*async.Task, error) {
				_, task, err := p.AddRow(ctx, testUser, "다섯", "five")
				return task, err
			},
			wantKeys: []string{"k1", "k2", "k3", "p4"},
		},
		{
			name: "timed out delete still reloads from the server",
			f: func(m practiceMocks) {
				m.repo.EXPECT().DeleteRow(gomock.Any(), testOwner, id2).
					DoAndReturn(func(ctx context.Context, _, _ string) error {
						return blockUntilDone(ctx)
					})
				m.notifier.EXPECT().Alert(testUser, gomock.Any())
				m.repo.EXPECT().ListRows(gomock.Any(), testOwner).
					DoAndReturn(func(ctx context.Context, _ string) ([]models.Row, error) {
						if err := ctx.Err(); err != nil {
							return nil, err
						}
						return remoteRows, nil
					})
			},
			run: func(ctx context.Context, p *PracticeS) (*async.Task, error) {
				return p.DeleteRow(ctx, testUser, "k2")
			},
			wantIDs: []string{id1},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, local := newPracticeServiceMock(t, ctrl, true, seededDoc, tt.f)
			p.tasks = async.NewGroup(50 * time.Millisecond)
			ctx := context.Background()

			task, err := tt.run(ctx, p)
			require.NoError(t, err)
			assert.ErrorIs(t, task.Wait(), context.DeadlineExceeded)

			st := p.ws.Get(ctx, testUser).Snapshot()
			assertContiguous(t, st.Rows)
			assert.Equal(t, st, local.stored(t, "app:v1:1"))

			if tt.wantKeys != nil {
				assert.Equal(t, tt.wantKeys, rowKeys(st.Rows))
			}
			if tt.wantIDs != nil {
				ids := make([]string, len(st.Rows))
				for i, r := range st.Rows {
					ids[i] = r.ID
				}
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestPracticeS_UpdateRow(t *testing.T) {
	t.Parallel()

	en := "uno"
	remoteErr := errors.New("timeout")

	tests := []struct {
		name    string
		key     string
		f       func(practiceMocks)
		wantErr error
		taskErr error
	}{
		{
			name: "confirmed row is pushed",
			key:  "k1",
			f: func(m practiceMocks) {
				m.repo.EXPECT().UpdateRow(gomock.Any(), testOwner, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, row models.Row) error {
						assert.Equal(t, id1, row.ID)
						assert.Equal(t, "uno", row.En)
						return nil
					})
			},
		},
		{
			name: "remote failure is only logged",
			key:  "k1",
			f: func(m practiceMocks) {
				m.repo.EXPECT().UpdateRow(gomock.Any(), testOwner, gomock.Any()).Return(remoteErr)
			},
			taskErr: remoteErr,
		},
		{
			name: "provisional row is not pushed",
			key:  "p4",
		},
		{
			name:    "unknown key",
			key:     "nope",
			wantErr: ErrRowNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, local := newPracticeServiceMock(t, ctrl, true, seededDoc, tt.f)
			ctx := context.Background()

			task, err := p.UpdateRow(ctx, testUser, tt.key, models.RowPatch{En: &en})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.ErrorIs(t, task.Wait(), tt.taskErr)

			row, err := p.Row(ctx, testUser, tt.key)
			require.NoError(t, err)
			assert.Equal(t, "uno", row.En)
			assert.NotEmpty(t, row.Ko)

			stored := local.stored(t, "app:v1:1")
			assert.Equal(t, row, stored.Rows[row.No-1])
		})
	}
}

func TestPracticeS_RecordOutcome(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _ := newPracticeServiceMock(t, ctrl, true, seededDoc, func(m practiceMocks) {
		m.repo.EXPECT().UpdateRow(gomock.Any(), testOwner, gomock.Any()).Return(errors.New("offline")).Times(6)
	})
	ctx := context.Background()

	outcomes := []models.Outcome{
		models.OutcomePass, models.OutcomeFail, models.OutcomePartial,
		models.OutcomePass, models.OutcomeFail, models.OutcomeFail,
	}
	var row models.Row
	for _, o := range outcomes {
		var (
			task *async.Task
			err  error
		)
		row, task, err = p.RecordOutcome(ctx, testUser, "k2", o)
		require.NoError(t, err)
		assert.Error(t, task.Wait())
	}

	assert.Equal(t, outcomes[1:], row.History)
	assert.Equal(t, 6, row.Count)
	assert.Equal(t, "2024-03-10", row.ReviewDay)

	_, _, err := p.RecordOutcome(ctx, testUser, "k2", models.Outcome("Z"))
	assert.ErrorIs(t, err, ErrInvalidOutcome)

	_, _, err = p.RecordOutcome(ctx, testUser, "missing", models.OutcomePass)
	assert.ErrorIs(t, err, ErrRowNotFound)

	got, err := p.Row(ctx, testUser, "k2")
	require.NoError(t, err)
	assert.Equal(t, row, got)
}

func TestPracticeS_DeleteRow(t *testing.T) {
	t.Parallel()

	remoteRows := []models.Row{
		{ID: id1, No: 1, Ko: "하나", En: "one", History: []models.Outcome{}},
		{ID: id2, No: 2, Ko: "둘", En: "two", History: []models.Outcome{}},
	}

	tests := []struct {
		name     string
		key      string
		f        func(practiceMocks)
		wantErr  error
		taskErr  bool
		wantKeys []string
		wantRows []models.Row
	}{
		{
			name: "confirmed row deleted and remaining reordered",
			key:  "k2",
			f: func(m practiceMocks) {
				gomock.InOrder(
					m.repo.EXPECT().DeleteRow(gomock.Any(), testOwner, id2).Return(nil),
					m.repo.EXPECT().ReorderRows(gomock.Any(), testOwner, []models.RowOrder{{ID: id1, No: 1}, {ID: id3, No: 2}}).Return(nil),
				)
			},
			wantKeys: []string{"k1", "k3", "p4"},
		},
		{
			name: "provisional row skips remote delete",
			key:  "p4",
			f: func(m practiceMocks) {
				m.repo.EXPECT().ReorderRows(gomock.Any(), testOwner, []models.RowOrder{{ID: id1, No: 1}, {ID: id2, No: 2}, {ID: id3, No: 3}}).Return(nil)
			},
			wantKeys: []string{"k1", "k2", "k3"},
		},
		{
			name: "remote failure reloads from the server",
			key:  "k3",
			f: func(m practiceMocks) {
				m.repo.EXPECT().DeleteRow(gomock.Any(), testOwner, id3).Return(errors.New("conflict"))
				m.notifier.EXPECT().Alert(testUser, gomock.Any())
				m.repo.EXPECT().ListRows(gomock.Any(), testOwner).Return(remoteRows, nil)
			},
			taskErr:  true,
			wantRows: remoteRows,
		},
		{
			name: "reload failure is surfaced too",
			key:  "k1",
			f: func(m practiceMocks) {
				m.repo.EXPECT().DeleteRow(gomock.Any(), testOwner, id1).Return(nil)
				m.repo.EXPECT().ReorderRows(gomock.Any(), testOwner, gomock.Any()).Return(errors.New("conflict"))
				m.notifier.EXPECT().Alert(testUser, gomock.Any()).Times(2)
				m.repo.EXPECT().ListRows(gomock.Any(), testOwner).Return(nil, errors.New("down"))
			},
			taskErr:  true,
			wantKeys: []string{"k2", "k3", "p4"},
		},
		{
			name:    "unknown key",
			key:     "zzz",
			wantErr: ErrRowNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, local := newPracticeServiceMock(t, ctrl, true, seededDoc, tt.f)
			ctx := context.Background()

			task, err := p.DeleteRow(ctx, testUser, tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.taskErr {
				assert.Error(t, task.Wait())
			} else {
				assert.NoError(t, task.Wait())
			}

			st := p.ws.Get(ctx, testUser).Snapshot()
			assertContiguous(t, st.Rows)
			assert.Equal(t, "seed", st.Meta.Title)
			assert.Equal(t, st, local.stored(t, "app:v1:1"))

			if tt.wantRows != nil {
				require.Len(t, st.Rows, len(tt.wantRows))
				for i, r := range st.Rows {
					assert.Equal(t, tt.wantRows[i].ID, r.ID)
					assert.Equal(t, tt.wantRows[i].Ko, r.Ko)
					assert.NotEmpty(t, r.Key)
				}
				return
			}
			assert.Equal(t, tt.wantKeys, rowKeys(st.Rows))
		})
	}
}

func TestPracticeS_DeleteRow_LoggedOut(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _ := newPracticeServiceMock(t, ctrl, false, seededDoc, nil)
	ctx := context.Background()

	task, err := p.DeleteRow(ctx, testUser, "k1")
	require.NoError(t, err)
	require.NoError(t, task.Wait())

	rows := p.ws.Get(ctx, testUser).Snapshot().Rows
	assert.Equal(t, []string{"k2", "k3", "p4"}, rowKeys(rows))
	assertContiguous(t, rows)
}

func TestPracticeS_MoveRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		position int
		f        func(practiceMocks)
		wantKeys []string
	}{
		{
			name:     "to the top",
			key:      "k3",
			position: 1,
			f: func(m practiceMocks) {
				m.repo.EXPECT().ReorderRows(gomock.Any(), testOwner, []models.RowOrder{{ID: id3, No: 1}, {ID: id1, No: 2}, {ID: id2, No: 3}}).Return(nil)
			},
			wantKeys: []string{"k3", "k1", "k2", "p4"},
		},
		{
			name:     "position clamped to the end",
			key:      "k1",
			position: 99,
			f: func(m practiceMocks) {
				m.repo.EXPECT().ReorderRows(gomock.Any(), testOwner, []models.RowOrder{{ID: id2, No: 1}, {ID: id3, No: 2}, {ID: id1, No: 4}}).Return(nil)
			},
			wantKeys: []string{"k2", "k3", "p4", "k1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			p, _ := newPracticeServiceMock(t, ctrl, true, seededDoc, tt.f)
			ctx := context.Background()

			task, err := p.MoveRow(ctx, testUser, tt.key, tt.position)
			require.NoError(t, err)
			require.NoError(t, task.Wait())

			rows := p.ws.Get(ctx, testUser).Snapshot().Rows
			assert.Equal(t, tt.wantKeys, rowKeys(rows))
			assertContiguous(t, rows)
		})
	}
}

func TestPracticeS_Reload(t *testing.T) {
	t.Parallel()

	t.Run("logged out", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p, _ := newPracticeServiceMock(t, ctrl, false, seededDoc, nil)
		assert.ErrorIs(t, p.Reload(context.Background(), testUser), ErrNotAuthenticated)
	})

	t.Run("remote list replaces rows", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		p, _ := newPracticeServiceMock(t, ctrl, true, seededDoc, func(m practiceMocks) {
			m.repo.EXPECT().ListRows(gomock.Any(), testOwner).Return([]models.Row{
				{ID: id2, No: 7, Ko: "둘", History: []models.Outcome{models.OutcomePass}, Count: 1},
			}, nil)
		})
		ctx := context.Background()

		require.NoError(t, p.Reload(ctx, testUser))

		st := p.ws.Get(ctx, testUser).Snapshot()
		require.Len(t, st.Rows, 1)
		assert.Equal(t, id2, st.Rows[0].ID)
		assert.Equal(t, 1, st.Rows[0].No)
		assert.Equal(t, 310, st.Meta.Goal)
	})
}

func TestPracticeS_Rows(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _ := newPracticeServiceMock(t, ctrl, false, "", nil)
	ctx := context.Background()
	for i := 0; i < 23; i++ {
		_, _, err := p.AddRow(ctx, testUser, fmt.Sprintf("문장 %d", i+1), "")
		require.NoError(t, err)
	}

	tests := []struct {
		page     int
		wantLen  int
		wantNo   int
		wantNext bool
	}{
		{page: -1, wantLen: 10, wantNo: 1, wantNext: true},
		{page: 0, wantLen: 10, wantNo: 1, wantNext: true},
		{page: 1, wantLen: 10, wantNo: 11, wantNext: true},
		{page: 2, wantLen: 3, wantNo: 21, wantNext: false},
		{page: 3, wantLen: 0, wantNext: false},
	}

	for _, tt := range tests {
		rows, total, next := p.Rows(ctx, testUser, tt.page)
		assert.Equal(t, 23, total)
		assert.Len(t, rows, tt.wantLen, "page %d", tt.page)
		assert.Equal(t, tt.wantNext, next, "page %d", tt.page)
		if tt.wantLen > 0 {
			assert.Equal(t, tt.wantNo, rows[0].No)
		}
	}
}
