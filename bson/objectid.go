// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0
//
// Based on gopkg.in/mgo.v2/bson by Gustavo Niemeyer
// See THIRD-PARTY-NOTICES for original license terms.

package bson

import (
	"crypto/md5"
	"crypto/rand"
	"encoding"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// ErrInvalidHex indicates that a hex string cannot be converted to an ObjectID.
var ErrInvalidHex = errors.New("the provided hex string is not a valid ObjectID")

// ObjectID is the classic 12-byte BSON object identifier (§3): a 4-byte
// big-endian Unix timestamp, a 3-byte machine identifier, a 2-byte
// process/thread identifier, and a 3-byte counter.
type ObjectID [12]byte

// NilObjectID is the zero value for ObjectID.
var NilObjectID ObjectID

var (
	objectIDCounter    uint32
	objectIDCounterSet sync.Once

	machineID    [3]byte
	machineIDSet sync.Once

	pidBytes [2]byte
	pidSet   sync.Once
)

var _ encoding.TextMarshaler = ObjectID{}
var _ encoding.TextUnmarshaler = &ObjectID{}

func initCounter() {
	var b [4]byte
	if _, err := io.ReadFull(rand.Reader, b[:]); err != nil {
		// crypto/rand failure is effectively unrecoverable; fall back to a
		// seed taken from the current time rather than panicking a value
		// constructor.
		objectIDCounter = uint32(time.Now().UnixNano())
		return
	}
	objectIDCounter = binary.BigEndian.Uint32(b[:])
}

// resolveMachineID derives the 3-byte machine identifier: the first 3 bytes
// of the MD5 hash of the first resolvable MAC address, falling back to the
// hashed hostname, falling back to the low 3 bytes of the current pid.
func resolveMachineID() [3]byte {
	var out [3]byte
	if ifaces, err := net.Interfaces(); err == nil {
		for _, iface := range ifaces {
			if len(iface.HardwareAddr) == 0 {
				continue
			}
			sum := md5.Sum(iface.HardwareAddr)
			copy(out[:], sum[:3])
			return out
		}
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		sum := md5.Sum([]byte(host))
		copy(out[:], sum[:3])
		return out
	}
	pid := os.Getpid()
	out[0] = byte(pid >> 16)
	out[1] = byte(pid >> 8)
	out[2] = byte(pid)
	return out
}

func resolvePID() [2]byte {
	pid := os.Getpid()
	var b [2]byte
	b[0] = byte(pid >> 8)
	b[1] = byte(pid)
	return b
}

// NewObjectID generates a fresh ObjectID from the current time.
func NewObjectID() ObjectID {
	return NewObjectIDFromTime(time.Now(), false)
}

// NewObjectIDFromTime generates an ObjectID whose timestamp field is derived
// from t. When timestampOnly is true the trailing 8 bytes (machine, pid,
// counter) are zeroed, producing the sentinel form used for range queries
// (§3, "fromTime").
func NewObjectIDFromTime(t time.Time, timestampOnly bool) ObjectID {
	var id ObjectID
	binary.BigEndian.PutUint32(id[0:4], uint32(t.Unix()))
	if timestampOnly {
		return id
	}

	machineIDSet.Do(func() { machineID = resolveMachineID() })
	pidSet.Do(func() { pidBytes = resolvePID() })
	objectIDCounterSet.Do(initCounter)

	copy(id[4:7], machineID[:])
	copy(id[7:9], pidBytes[:])
	putUint24(id[9:12], atomic.AddUint32(&objectIDCounter, 1))

	return id
}

// Timestamp extracts the time portion of the ObjectID.
func (id ObjectID) Timestamp() time.Time {
	unixSecs := binary.BigEndian.Uint32(id[0:4])
	return time.Unix(int64(unixSecs), 0).UTC()
}

// Hex returns the lowercase hex encoding of the ObjectID.
func (id ObjectID) Hex() string {
	var buf [24]byte
	hex.Encode(buf[:], id[:])
	return string(buf[:])
}

// String implements fmt.Stringer, matching the debug notation used by
// PrettyPrint (§4.1).
func (id ObjectID) String() string {
	return `ObjectId('` + id.Hex() + `')`
}

// IsZero reports whether id is the empty ObjectID.
func (id ObjectID) IsZero() bool {
	return id == NilObjectID
}

// Type implements Value.
func (id ObjectID) Type() Type { return TypeObjectID }

// ByteSize implements Value; an ObjectID is always its 12 raw bytes (§3).
func (id ObjectID) ByteSize() int32 { return 12 }

func (ObjectID) value() {}

// ObjectIDFromHex parses a 24-character hex string into an ObjectID.
func ObjectIDFromHex(s string) (ObjectID, error) {
	if len(s) != 24 {
		return NilObjectID, ErrInvalidHex
	}

	var oid [12]byte
	if _, err := hex.Decode(oid[:], []byte(s)); err != nil {
		return NilObjectID, ErrInvalidHex
	}

	return oid, nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ObjectID) MarshalText() ([]byte, error) {
	var buf [24]byte
	hex.Encode(buf[:], id[:])
	return buf[:], nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ObjectID) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*id = NilObjectID
		return nil
	}
	oid, err := ObjectIDFromHex(string(b))
	if err != nil {
		return fmt.Errorf("objectid: %w", err)
	}
	*id = oid
	return nil
}

func putUint24(b []byte, v uint32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}
