package netsync

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/EiraChris/Mirror/entity"
	"github.com/EiraChris/Mirror/smath"
	"github.com/EiraChris/Mirror/snapshot"
)

func snap(ts float64, x float32) snapshot.Snapshot {
	return snapshot.New(ts, mgl32.Vec3{x, 0, 0}, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1})
}

func TestFeedReportsStaleDrops(t *testing.T) {
	se := NewSyncedEntity(Config{BufferTime: 0.1}, entity.IdentityTransform())

	if !se.Feed(FromServer, snap(2, 0)) {
		t.Fatal("expected first snapshot to be accepted")
	}
	if !se.Feed(FromServer, snap(3, 0)) {
		t.Fatal("expected newer snapshot to be accepted")
	}
	if se.Feed(FromServer, snap(1, 0)) {
		t.Fatal("expected stale snapshot to be dropped")
	}
	if se.BufferLen(FromServer) != 2 {
		t.Fatalf("expected 2 buffered snapshots, got %d", se.BufferLen(FromServer))
	}
}

func TestTickAppliesComputedSnapshot(t *testing.T) {
	se := NewSyncedEntity(Config{BufferTime: 1}, entity.IdentityTransform())
	se.Feed(FromServer, snap(1, 1))
	se.Feed(FromServer, snap(2, 2))

	// First tick bootstraps the clock from the oldest entry (1) and advances
	// it by 2.5 to 3.5; both entries sit behind the 2.5 threshold, and the
	// cursor overruns the pair, so the held output is the newest entry.
	computed, ok := se.Tick(FromServer, 2.5, 1)
	if !ok {
		t.Fatal("expected a computed snapshot")
	}
	if !smath.Vec3ApproxEq(computed.Position, mgl32.Vec3{2, 0, 0}) {
		t.Fatalf("expected held position (2,0,0), got %v", computed.Position)
	}
	if got := se.Entity().Transform().Position; !smath.Vec3ApproxEq(got, mgl32.Vec3{2, 0, 0}) {
		t.Fatalf("expected transform updated, got %v", got)
	}
	if se.BufferLen(FromServer) != 1 {
		t.Fatalf("expected consumed head trimmed, got %d", se.BufferLen(FromServer))
	}
}

func TestDirectionsAreIndependent(t *testing.T) {
	se := NewSyncedEntity(Config{BufferTime: 0.1}, entity.IdentityTransform())
	se.Feed(FromServer, snap(1, 1))
	se.Feed(FromClient, snap(10, 5))

	se.Tick(FromServer, 0.5, 1)
	if got := se.State(FromServer).RemoteTime; got != 1.5 {
		t.Fatalf("expected server clock 1.5, got %v", got)
	}
	if got := se.State(FromClient).RemoteTime; got != 0 {
		t.Fatalf("expected client clock untouched, got %v", got)
	}

	se.Reset(FromServer)
	if got := se.State(FromServer); got.RemoteTime != 0 || got.InterpolationTime != 0 {
		t.Fatalf("expected server state zeroed, got %+v", got)
	}
	if se.BufferLen(FromClient) != 1 {
		t.Fatalf("expected client buffer untouched by server reset, got %d", se.BufferLen(FromClient))
	}
}

func TestTeleportResetsEverything(t *testing.T) {
	se := NewSyncedEntity(Config{BufferTime: 0.1}, entity.IdentityTransform())
	se.Feed(FromServer, snap(1, 1))
	se.Feed(FromClient, snap(2, 2))
	se.Tick(FromServer, 0.5, 1)

	dest := entity.Transform{Position: mgl32.Vec3{50, 0, 0}, Rotation: mgl32.QuatIdent(), Scale: mgl32.Vec3{1, 1, 1}}
	se.Teleport(dest)

	for _, dir := range []Direction{FromServer, FromClient} {
		if se.BufferLen(dir) != 0 {
			t.Fatalf("expected %s buffer cleared, got %d", dir, se.BufferLen(dir))
		}
		if st := se.State(dir); st.RemoteTime != 0 || st.InterpolationTime != 0 {
			t.Fatalf("expected %s state zeroed, got %+v", dir, st)
		}
	}
	if got := se.Entity().Transform().Position; got != dest.Position {
		t.Fatalf("expected entity at teleport destination, got %v", got)
	}
}

func TestJitterEstimator(t *testing.T) {
	j := NewJitterEstimator(16)
	for _, ts := range []float64{1.00, 1.05, 1.10, 1.15} {
		j.Observe(ts)
	}

	if got := j.MeanInterval(); !mgl32.FloatEqualThreshold(float32(got), 0.05, 1e-5) {
		t.Fatalf("expected mean interval 0.05, got %v", got)
	}
	// Perfectly regular arrivals have zero deviation, so the suggestion is
	// exactly multiplier * mean.
	if got := j.SuggestedBufferTime(3); !mgl32.FloatEqualThreshold(float32(got), 0.15, 1e-5) {
		t.Fatalf("expected suggestion 0.15, got %v", got)
	}

	j.Reset()
	if got := j.SuggestedBufferTime(3); got != 0 {
		t.Fatalf("expected zero suggestion after reset, got %v", got)
	}
}

func TestJitterIgnoresBackwardTimestamps(t *testing.T) {
	j := NewJitterEstimator(16)
	j.Observe(2)
	j.Observe(1) // reordered arrival, no negative interval recorded
	j.Observe(1.5)

	if got := j.MeanInterval(); !mgl32.FloatEqualThreshold(float32(got), 0.5, 1e-5) {
		t.Fatalf("expected mean interval 0.5, got %v", got)
	}
}
