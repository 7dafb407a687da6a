package ownptr_test

import (
	"encoding/json"
	"testing"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/arsenal/scopeutils/ownptr"
	"golang.org/x/exp/slog"
)

// These run without the debug_scope_utils tag, so the tracker never
// populates. What we can verify here is that the reporting surface stays
// well-formed and empty.

func TestLiveCountWithoutDebugTracking(t *testing.T) {
	target := &resource{id: 100}
	wrapper := ownptr.New(target, true, releaseResource)

	require.Equal(t, 0, ownptr.LiveCount())

	wrapper.Destroy()
	require.Equal(t, 0, ownptr.LiveCount())
}

func TestPrintLiveReportShape(t *testing.T) {
	writer := jwriter.NewWriter()
	ownptr.PrintLiveReport(&writer)
	require.NoError(t, writer.Error())

	var report struct {
		AcquiredOwned int
		ReleasedOwned int
		LiveOwned     int
		Live          []struct {
			Address  int
			Sequence int
		}
	}
	require.NoError(t, json.Unmarshal(writer.Bytes(), &report))
	require.Equal(t, report.AcquiredOwned-report.ReleasedOwned, report.LiveOwned)
	require.Len(t, report.Live, report.LiveOwned)
}

func TestLiveJsonData(t *testing.T) {
	writer := jwriter.NewWriter()
	objState := writer.Object()
	ownptr.LiveJsonData(objState)
	objState.End()
	require.NoError(t, writer.Error())

	var report map[string]int
	require.NoError(t, json.Unmarshal(writer.Bytes(), &report))
	require.Contains(t, report, "AcquiredOwned")
	require.Contains(t, report, "ReleasedOwned")
	require.Contains(t, report, "LiveOwned")
}

func TestDebugLogLiveWithoutDebugTracking(t *testing.T) {
	target := &resource{id: 101}
	wrapper := ownptr.New(target, true, releaseResource)
	defer wrapper.Destroy()

	calls := 0
	ownptr.DebugLogLive(slog.Default(), func(log *slog.Logger, address uintptr, sequence uint64) {
		calls++
	})
	require.Equal(t, 0, calls)
}
