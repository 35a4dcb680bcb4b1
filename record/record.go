// Package record implements a little-endian binary capture of applied
// snapshots, used to replay or inspect a sync session offline. It is a local
// debugging format, not a network wire format.
package record

import (
	"bytes"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/EiraChris/Mirror/internal"
	"github.com/EiraChris/Mirror/merror"
	"github.com/EiraChris/Mirror/snapshot"
	"github.com/EiraChris/Mirror/utils"
)

const RecordsVersion = 1

// entrySize is the fixed encoded width of one entry: runtime ID, tick and
// timestamp (8 bytes each), position and scale vectors (12 bytes each), and
// the rotation quaternion (16 bytes).
const entrySize = 8 + 8 + 8 + 12 + 16 + 12

// Entry is one recorded snapshot application: which entity it was applied to
// and on which local tick.
type Entry struct {
	RuntimeID uint64
	Tick      int64
	Snapshot  snapshot.Snapshot
}

// Encode serializes entries into a single record blob.
func Encode(entries []Entry) []byte {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	utils.WriteLUint64(buf, RecordsVersion)
	utils.WriteLUint64(buf, uint64(len(entries)))
	for _, e := range entries {
		writeEntry(buf, e)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out
}

// Decode parses a record blob produced by Encode.
func Decode(dat []byte) ([]Entry, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	buf.Write(dat)
	defer internal.BufferPool.Put(buf)

	version, err := utils.ReadLUint64(buf)
	if err != nil {
		return nil, merror.New("error decoding record header: %v", err)
	}
	if version != RecordsVersion {
		return nil, merror.New("unsupported record version %d", version)
	}

	count, err := utils.ReadLUint64(buf)
	if err != nil {
		return nil, merror.New("error decoding record count: %v", err)
	}
	// The count comes from the blob itself, so it must be checked against the
	// bytes actually present before it sizes an allocation.
	if count > uint64(buf.Len())/entrySize {
		return nil, merror.New("record count %d exceeds remaining data (%d bytes)", count, buf.Len())
	}

	entries := make([]Entry, 0, count)
	for i := uint64(0); i < count; i++ {
		e, err := readEntry(buf)
		if err != nil {
			return entries, merror.New("error decoding record entry %d: %v", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func writeEntry(buf *bytes.Buffer, e Entry) {
	utils.WriteLUint64(buf, e.RuntimeID)
	utils.WriteLInt64(buf, e.Tick)
	utils.WriteLFloat64(buf, e.Snapshot.Timestamp)
	writeVec3(buf, e.Snapshot.Position)
	utils.WriteLFloat32(buf, e.Snapshot.Rotation.W)
	writeVec3(buf, e.Snapshot.Rotation.V)
	writeVec3(buf, e.Snapshot.Scale)
}

func readEntry(buf *bytes.Buffer) (Entry, error) {
	var (
		e   Entry
		err error
	)
	if e.RuntimeID, err = utils.ReadLUint64(buf); err != nil {
		return e, err
	}
	if e.Tick, err = utils.ReadLInt64(buf); err != nil {
		return e, err
	}
	if e.Snapshot.Timestamp, err = utils.ReadLFloat64(buf); err != nil {
		return e, err
	}
	if e.Snapshot.Position, err = readVec3(buf); err != nil {
		return e, err
	}
	if e.Snapshot.Rotation.W, err = utils.ReadLFloat32(buf); err != nil {
		return e, err
	}
	if e.Snapshot.Rotation.V, err = readVec3(buf); err != nil {
		return e, err
	}
	if e.Snapshot.Scale, err = readVec3(buf); err != nil {
		return e, err
	}
	return e, nil
}

func writeVec3(buf *bytes.Buffer, v mgl32.Vec3) {
	utils.WriteLFloat32(buf, v.X())
	utils.WriteLFloat32(buf, v.Y())
	utils.WriteLFloat32(buf, v.Z())
}

func readVec3(buf *bytes.Buffer) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	for i := 0; i < 3; i++ {
		f, err := utils.ReadLFloat32(buf)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}
