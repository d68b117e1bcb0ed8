// Copyright (c) 2024-2026 Neomantra Corp
//
// Sentinel and absence helpers shared by the codec. Adapted from the
// teacher's helpers.go convention of small top-level pure functions rather
// than methods, so they can be reused by both the encoder and decoder paths.

package ibtws

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/relvacode/iso8601"
)

// UnsetFloat is the absence sentinel for most "_max"-suffixed float fields
// on the wire; this client's own API prefers NaN so comparisons don't
// silently collide with a legitimate unset-looking number.
const UnsetFloat = math.MaxFloat64

// UnsetInt is the absence sentinel for most "_max"-suffixed int fields.
const UnsetInt = math.MaxInt32

// IsUnsetFloat reports whether f is the wire's float absence sentinel or NaN.
func IsUnsetFloat(f float64) bool {
	return f == UnsetFloat || math.IsNaN(f)
}

// IsUnsetInt reports whether v is the wire's int absence sentinel.
func IsUnsetInt(v int32) bool {
	return v == UnsetInt
}

// NaNIfUnset converts the wire's float absence sentinel to NaN, leaving any
// other value (including a legitimate 0) untouched.
func NaNIfUnset(f float64) float64 {
	if f == UnsetFloat {
		return math.NaN()
	}
	return f
}

// ZeroIfUnset converts the wire's int absence sentinel to 0.
func ZeroIfUnset(v int32) int32 {
	if v == UnsetInt {
		return 0
	}
	return v
}

// ParseServerTime parses the free-form timestamp strings the server sends
// (the handshake's connection time, NewsArticle/WSH event timestamps) as
// permissively as possible: ISO8601 first since several newer message types
// use it, falling back to the legacy "yyyyMMdd HH:mm:ss zzz" handshake
// format before giving up.
func ParseServerTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := iso8601.ParseString(s); err == nil {
		return t, nil
	}
	fields := strings.Fields(s)
	if len(fields) >= 2 {
		loc := time.UTC
		if len(fields) >= 3 {
			if l, err := time.LoadLocation(fields[2]); err == nil {
				loc = l
			}
		}
		if t, err := time.ParseInLocation("20060102 15:04:05", fields[0]+" "+fields[1], loc); err == nil {
			return t, nil
		}
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, unparseableTimeError(s)
}

func unparseableTimeError(s string) error {
	return &Error{Kind: KindDecoding, Message: "unparseable server timestamp: " + s}
}

// isInfinity reports whether f is +/-Inf, the value the wire's literal
// "Infinity"/"-Infinity" strings decode to upstream.
func isInfinity(f float64) bool {
	return math.IsInf(f, 0)
}
