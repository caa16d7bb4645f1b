// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/bloom-crm/internal/adapter"
	"github.com/MKhiriev/bloom-crm/internal/app"
	"github.com/MKhiriev/bloom-crm/internal/config"
	"github.com/MKhiriev/bloom-crm/internal/mock"
	"github.com/MKhiriev/bloom-crm/internal/service"
	"github.com/MKhiriev/bloom-crm/internal/validators"
	"github.com/MKhiriev/bloom-crm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	runs int
	err  error
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.runs++
	return f.err
}

type testCLI struct {
	store *mock.MockEntityStore
	ui    *fakeUI
	cfg   *config.ClientConfig

	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &testCLI{store: mock.NewMockEntityStore(ctrl), ui: &fakeUI{}}
}

// run executes bloom with args and stdin.
func (tc *testCLI) run(stdin string, args ...string) error {
	connect := func(cfg *config.ClientConfig) (*Env, error) {
		tc.cfg = cfg
		return &Env{
			Manager: service.NewRecordManager(tc.store, validators.NewClientValidator()),
			UI:      tc.ui,
		}, nil
	}

	root := NewRootCommand(connect, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123"))
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&tc.stdout)
	root.SetErr(&tc.stderr)
	return root.ExecuteContext(context.Background())
}

func listOf(clients ...models.Client) models.ListClientsResponse {
	return models.ListClientsResponse{Success: true, Data: clients, Length: len(clients)}
}

func budget(v float64) *float64 { return &v }

var emma = models.Client{
	ID: "c-1", FirstName: "Emma", LastName: "Stone", Email: "emma@example.com",
	EventType: models.EventWedding, EventDate: models.NewDate(2025, time.June, 14),
	Status: models.StatusBooked, Budget: budget(2500),
}

var adam = models.Client{ID: "c-2", FirstName: "Adam", LastName: "Smith", Status: models.StatusProspect}

// ── root / version ──

func TestRoot_RunsTUI(t *testing.T) {
	tc := newTestCLI(t)

	require.NoError(t, tc.run("", "--address", "crm.local:9090", "--timeout", "3s"))

	assert.Equal(t, 1, tc.ui.runs)
	require.NotNil(t, tc.cfg)
	assert.Equal(t, "crm.local:9090", tc.cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, tc.cfg.Adapter.RequestTimeout)
}

func TestRoot_TUIError(t *testing.T) {
	tc := newTestCLI(t)
	tc.ui.err = errors.New("no tty")

	assert.EqualError(t, tc.run(""), "no tty")
}

func TestRoot_NoConnector(t *testing.T) {
	root := NewRootCommand(nil, models.AppBuildInfo{})
	root.SetArgs([]string{})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.ErrorIs(t, root.Execute(), ErrNoConnector)
}

func TestVersion(t *testing.T) {
	tc := newTestCLI(t)

	require.NoError(t, tc.run("", "version"))

	out := tc.stdout.String()
	assert.Contains(t, out, "Build version: 1.0.0")
	assert.Contains(t, out, "Build date: 2026-01-01")
	assert.Contains(t, out, "Build commit: abc123")
	assert.Nil(t, tc.cfg)
}

// ── clients list ──

func TestClientsList(t *testing.T) {
	tc := newTestCLI(t)
	tc.store.EXPECT().List(gomock.Any()).Return(listOf(emma, adam), nil)

	require.NoError(t, tc.run("", "clients", "list"))

	out := tc.stdout.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Emma Stone")
	assert.Contains(t, out, "2025-06-14")
	assert.Contains(t, out, "2500.00")
	assert.Contains(t, out, "Adam Smith")
	assert.Contains(t, out, "Total: 2 client(s)")
}

func TestClientsList_FilterAndJSON(t *testing.T) {
	tc := newTestCLI(t)
	tc.store.EXPECT().List(gomock.Any()).Return(listOf(emma, adam), nil)

	require.NoError(t, tc.run("", "clients", "list", "--status", "BOOKED", "--json"))

	var got []models.Client
	require.NoError(t, json.Unmarshal(tc.stdout.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, emma.ID, got[0].ID)
}

func TestClientsList_Empty(t *testing.T) {
	tc := newTestCLI(t)
	tc.store.EXPECT().List(gomock.Any()).Return(listOf(), nil)

	require.NoError(t, tc.run("", "clients", "list"))

	assert.Contains(t, tc.stdout.String(), app.MsgNoClients)
}

func TestClientsList_Failure(t *testing.T) {
	tc := newTestCLI(t)
	tc.store.EXPECT().List(gomock.Any()).Return(models.ListClientsResponse{}, adapter.ErrServiceUnavailable)

	err := tc.run("", "clients", "list")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrLoadFailed)
	assert.Contains(t, err.Error(), app.MsgLoadFailed)
}

// ── clients add ──

func TestClientsAdd(t *testing.T) {
	tc := newTestCLI(t)
	tc.store.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d models.ClientDraft) (models.Client, error) {
			assert.Equal(t, "Emma", d.FirstName)
			assert.Equal(t, models.StatusProspect, d.Status)
			assert.Equal(t, models.EventWedding, d.EventType)
			assert.Equal(t, models.NewDate(2025, time.June, 14), d.EventDate)
			require.NotNil(t, d.Budget)
			assert.Equal(t, 2500.0, *d.Budget)
			return d.Apply(models.Client{ID: "c-9"}), nil
		})
	tc.store.EXPECT().List(gomock.Any()).Return(listOf(), nil)

	err := tc.run("", "clients", "add",
		"--first-name", "Emma", "--last-name", "Stone",
		"--event-type", "Wedding", "--event-date", "2025-06-14", "--budget", "$2,500")

	require.NoError(t, err)
	assert.Contains(t, tc.stdout.String(), app.MsgClientAdded)
	assert.Contains(t, tc.stdout.String(), "c-9")
}

func TestClientsAdd_InvalidNeverReachesStore(t *testing.T) {
	tc := newTestCLI(t)

	err := tc.run("", "clients", "add", "--first-name", "Emma")

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, validators.MsgLastNameRequired, verr.Field(validators.FieldLastName))
}

func TestClientsAdd_BadFlagValues(t *testing.T) {
	for _, args := range [][]string{
		{"--event-date", "14/06/2025"},
		{"--contact-date", "yesterday"},
		{"--budget", "lots"},
		{"--budget", "NaN"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			tc := newTestCLI(t)

			err := tc.run("", append([]string{"clients", "add", "--first-name", "A", "--last-name", "B"}, args...)...)

			assert.ErrorIs(t, err, ErrInvalidFlag)
			assert.Nil(t, tc.cfg)
		})
	}
}

func TestClientsAdd_SavedButNotRefreshed(t *testing.T) {
	tc := newTestCLI(t)
	tc.store.EXPECT().Create(gomock.Any(), gomock.Any()).Return(emma, nil)
	tc.store.EXPECT().List(gomock.Any()).Return(models.ListClientsResponse{}, adapter.ErrServiceUnavailable)

	err := tc.run("", "clients", "add", "--first-name", "Emma", "--last-name", "Stone")

	require.NoError(t, err)
	assert.Contains(t, tc.stdout.String(), app.MsgClientAdded)
	assert.Contains(t, tc.stderr.String(), "could not be refreshed")
}

// ── clients edit ──

func TestClientsEdit_ChangesOnlyNamedFields(t *testing.T) {
	tc := newTestCLI(t)
	tc.store.EXPECT().List(gomock.Any()).Return(listOf(emma), nil)
	tc.store.EXPECT().Update(gomock.Any(), emma.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, d models.ClientDraft) (models.Client, error) {
			assert.Equal(t, models.StatusCompleted, d.Status)
			assert.Nil(t, d.Budget)
			assert.Equal(t, emma.Email, d.Email)
			assert.Equal(t, emma.EventDate, d.EventDate)
			return d.Apply(emma), nil
		})
	tc.store.EXPECT().List(gomock.Any()).Return(listOf(emma), nil)

	err := tc.run("", "clients", "edit", emma.ID, "--status", "completed", "--budget", "")

	require.NoError(t, err)
	assert.Contains(t, tc.stdout.String(), app.MsgClientUpdated)
}

func TestClientsEdit_UnknownID(t *testing.T) {
	tc := newTestCLI(t)
	tc.store.EXPECT().List(gomock.Any()).Return(listOf(emma), nil)

	err := tc.run("", "clients", "edit", "c-404", "--status", "quoted")

	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestClientsEdit_NeedsID(t *testing.T) {
	tc := newTestCLI(t)

	assert.Error(t, tc.run("", "clients", "edit"))
}

// ── clients delete ──

func TestClientsDelete(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantDelete bool
	}{
		{name: "confirmed at prompt", stdin: "y\n", wantDelete: true},
		{name: "yes flag", args: []string{"--yes"}, wantDelete: true},
		{name: "declined", stdin: "n\n"},
		{name: "empty answer", stdin: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(t)
			if tt.wantDelete {
				tc.store.EXPECT().Delete(gomock.Any(), emma.ID).Return(nil)
				tc.store.EXPECT().List(gomock.Any()).Return(listOf(), nil)
			}

			err := tc.run(tt.stdin, append([]string{"clients", "delete", emma.ID}, tt.args...)...)

			require.NoError(t, err)
			if tt.wantDelete {
				assert.Contains(t, tc.stdout.String(), app.MsgClientDeleted)
			} else {
				assert.Contains(t, tc.stdout.String(), "Cancelled")
			}
		})
	}
}

func TestClientsDelete_NotFound(t *testing.T) {
	tc := newTestCLI(t)
	tc.store.EXPECT().Delete(gomock.Any(), "c-404").Return(adapter.ErrNotFound)

	err := tc.run("", "clients", "delete", "c-404", "-y")

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Contains(t, err.Error(), app.MsgNotFound)
}
