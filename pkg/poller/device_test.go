/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package poller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/carverauto/snmp-relay/pkg/logger"
	"github.com/carverauto/snmp-relay/pkg/models"
	"github.com/carverauto/snmp-relay/pkg/snmp"
)

const (
	oidUptime = ".1.3.6.1.2.1.1.3.0"
	oidMAC    = ".1.3.6.1.2.1.2.2.1.6.1"
	oidName   = ".1.3.6.1.2.1.1.5.0"
)

func epsonDevice() models.Device {
	return models.Device{
		Name:    "EPSON2C64AA",
		Address: "192.168.0.52",
		Variables: []models.Variable{
			{Label: "uptime", OID: oidUptime},
			{Label: "mac_address", OID: oidMAC},
		},
	}
}

type devicePollObservation struct {
	succeeded int
	failed    int
}

type fakeRecorder struct {
	mu    sync.Mutex
	polls []devicePollObservation
}

func (*fakeRecorder) ObserveQuery(models.OutcomeKind, time.Duration) {}
func (*fakeRecorder) ObserveRun(string, time.Duration)               {}

func (r *fakeRecorder) ObserveDevicePoll(succeeded, failed int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.polls = append(r.polls, devicePollObservation{succeeded: succeeded, failed: failed})
}

func requestFor(oid string) snmp.Request {
	return snmp.Request{
		Address:   "192.168.0.52",
		OID:       oid,
		Community: "public",
		Timeout:   2 * time.Second,
		Retries:   2,
		Port:      snmp.DefaultPort,
		Version:   snmp.Version2c,
	}
}

func TestPoll_ResultsInInventoryOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)

	device := epsonDevice()
	device.Variables = append(device.Variables, models.Variable{Label: "name", OID: oidName})

	gomock.InOrder(
		q.EXPECT().Query(gomock.Any(), requestFor(oidUptime)).Return(models.Success("12345")),
		q.EXPECT().Query(gomock.Any(), requestFor(oidMAC)).Return(models.Success("0x0026ab2c64aa")),
		q.EXPECT().Query(gomock.Any(), requestFor(oidName)).Return(models.Success("EPSON2C64AA")),
	)

	p := NewDevicePoller(q, DefaultConfig(), logger.NewTestLogger(), nil)

	report := p.Poll(context.Background(), device)

	assert.Equal(t, "EPSON2C64AA", report.DeviceName)
	assert.Equal(t, "192.168.0.52", report.Address)
	require.Len(t, report.Results, 3)
	assert.Equal(t, "uptime", report.Results[0].Label)
	assert.Equal(t, "12345", report.Results[0].Outcome.Value)
	assert.Equal(t, "mac_address", report.Results[1].Label)
	assert.Equal(t, "name", report.Results[2].Label)
	assert.Equal(t, "EPSON2C64AA", report.Results[2].Outcome.Value)
}

func TestPoll_FailureIsIsolated(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)
	rec := &fakeRecorder{}

	device := epsonDevice()
	device.Variables = append(device.Variables, models.Variable{Label: "name", OID: oidName})

	gomock.InOrder(
		q.EXPECT().Query(gomock.Any(), requestFor(oidUptime)).Return(models.Success("12345")),
		q.EXPECT().Query(gomock.Any(), requestFor(oidMAC)).Return(models.ProtocolError("noSuchObject: "+oidMAC)),
		q.EXPECT().Query(gomock.Any(), requestFor(oidName)).Return(models.Success("EPSON2C64AA")),
	)

	p := NewDevicePoller(q, DefaultConfig(), logger.NewTestLogger(), rec)

	report := p.Poll(context.Background(), device)

	require.Len(t, report.Results, 3)
	assert.True(t, report.Results[0].Outcome.OK())
	assert.Equal(t, models.OutcomeProtocolError, report.Results[1].Outcome.Kind)
	assert.True(t, report.Results[2].Outcome.OK())

	require.Len(t, rec.polls, 1)
	assert.Equal(t, devicePollObservation{succeeded: 2, failed: 1}, rec.polls[0])
}

func TestPoll_UnreachableDeviceReportsEveryVariable(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)

	q.EXPECT().Query(gomock.Any(), gomock.Any()).
		Return(models.TransportError("no response from agent after 3 attempt(s)")).
		Times(2)

	p := NewDevicePoller(q, DefaultConfig(), logger.NewTestLogger(), nil)

	report := p.Poll(context.Background(), epsonDevice())

	require.Len(t, report.Results, 2)

	for _, r := range report.Results {
		assert.Equal(t, models.OutcomeTransportError, r.Outcome.Kind)
	}
}

func TestPoll_NoVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)

	p := NewDevicePoller(q, DefaultConfig(), logger.NewTestLogger(), nil)

	report := p.Poll(context.Background(), models.Device{Name: "empty", Address: "10.0.0.9"})

	assert.NotNil(t, report.Results)
	assert.Empty(t, report.Results)
}

func TestPoll_AppliesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)

	q.EXPECT().Query(gomock.Any(), requestFor(oidUptime)).Return(models.Success("1"))

	p := NewDevicePoller(q, Config{Retries: -1}, logger.NewTestLogger(), nil)

	report := p.Poll(context.Background(), models.Device{
		Name:      "EPSON2C64AA",
		Address:   "192.168.0.52",
		Variables: []models.Variable{{Label: "uptime", OID: oidUptime}},
	})

	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Outcome.OK())
}

func TestPoll_ConfiguredSettingsReachQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)

	q.EXPECT().Query(gomock.Any(), snmp.Request{
		Address:   "192.168.0.52",
		OID:       oidUptime,
		Community: "private",
		Timeout:   500 * time.Millisecond,
		Retries:   0,
		Port:      1161,
		Version:   snmp.Version1,
	}).Return(models.Success("1"))

	cfg := Config{
		Community: "private",
		Timeout:   500 * time.Millisecond,
		Retries:   0,
		Port:      1161,
		Version:   snmp.Version1,
	}

	p := NewDevicePoller(q, cfg, logger.NewTestLogger(), nil)

	p.Poll(context.Background(), models.Device{
		Name:      "EPSON2C64AA",
		Address:   "192.168.0.52",
		Variables: []models.Variable{{Label: "uptime", OID: oidUptime}},
	})
}

func TestPoll_DeviceDeadlineFillsRemainingVariables(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)

	device := epsonDevice()
	device.Variables = append(device.Variables, models.Variable{Label: "name", OID: oidName})

	gomock.InOrder(
		q.EXPECT().Query(gomock.Any(), gomock.Any()).Return(models.Success("12345")),
		q.EXPECT().Query(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ snmp.Request) models.Outcome {
				<-ctx.Done()

				return models.TransportError("query cancelled: " + ctx.Err().Error())
			}),
	)

	cfg := DefaultConfig()
	cfg.DeviceTimeout = 50 * time.Millisecond

	p := NewDevicePoller(q, cfg, logger.NewTestLogger(), nil)

	report := p.Poll(context.Background(), device)

	require.Len(t, report.Results, 3)
	assert.True(t, report.Results[0].Outcome.OK())
	assert.Equal(t, models.OutcomeTransportError, report.Results[1].Outcome.Kind)
	assert.Equal(t, models.TransportError(ErrDeviceDeadline.Error()), report.Results[2].Outcome)
}

func TestPoll_CancelledRunSkipsQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	q := NewMockQuerier(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewDevicePoller(q, DefaultConfig(), logger.NewTestLogger(), nil)

	report := p.Poll(ctx, epsonDevice())

	require.Len(t, report.Results, 2)

	for _, r := range report.Results {
		assert.Equal(t, models.OutcomeTransportError, r.Outcome.Kind)
		assert.Contains(t, r.Outcome.Message, snmp.ErrQueryCancelled.Error())
	}
}
