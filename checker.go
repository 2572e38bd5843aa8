package ccitt

import (
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Stats holds the counters of an IntegrityChecker
type Stats struct {
	Checked uint64
	Failed  uint64
	Bytes   uint64
}

// IntegrityChecker validates received data blocks and keeps track of whether
// the stream is currently intact
type IntegrityChecker struct {
	mu      sync.Mutex
	stats   Stats
	valid   bool
	logger  *log.Logger
	metrics MetricsRecorder
}

// NewIntegrityChecker creates a new checker with no blocks seen
func NewIntegrityChecker() *IntegrityChecker {
	return &IntegrityChecker{}
}

// SetLogger sets the logger for the checker
func (c *IntegrityChecker) SetLogger(logger *log.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// SetMetrics sets the metrics recorder for the checker
func (c *IntegrityChecker) SetMetrics(m MetricsRecorder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metrics = m
}

// log returns the logger or creates a default one. Callers hold c.mu.
func (c *IntegrityChecker) log() *log.Logger {
	if c.logger == nil {
		c.logger = log.New()
	}
	return c.logger
}

// Check verifies a sealed block
func (c *IntegrityChecker) Check(block []byte) error {
	err := Verify(block)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.record(len(block), err)

	return err
}

// CheckRange verifies data[offset:offset+length] against an expected CRC
func (c *IntegrityChecker) CheckRange(data []byte, offset, length int, expected uint16) error {
	crc, err := ChecksumRange(data, offset, length)
	if err == nil && crc != expected {
		err = fmt.Errorf("%w: calculated 0x%04X, expected 0x%04X", ErrCRCFailed, crc, expected)
	}

	size := 0
	if err == nil || errors.Is(err, ErrCRCFailed) {
		size = min(length, max(len(data)-offset, 0))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.record(size, err)

	return err
}

func (c *IntegrityChecker) record(size int, err error) {
	c.stats.Checked++
	c.stats.Bytes += uint64(size)
	c.valid = err == nil

	if c.metrics != nil {
		c.metrics.RecordBlockChecked(size)
	}

	if err == nil {
		c.log().WithField("size", size).Debug("Block passed integrity check")
		return
	}

	c.stats.Failed++

	switch {
	case errors.Is(err, ErrCRCFailed):
		if c.metrics != nil {
			c.metrics.RecordCRCMismatch()
		}
	case errors.Is(err, ErrInvalidSize):
		if c.metrics != nil {
			c.metrics.RecordBlockError("size")
		}
	default:
		if c.metrics != nil {
			c.metrics.RecordBlockError("parameter")
		}
	}

	c.log().WithError(err).WithFields(log.Fields{
		"size":   size,
		"failed": c.stats.Failed,
	}).Warn("Block failed integrity check")
}

// Valid reports whether the most recent block passed
func (c *IntegrityChecker) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid
}

// Stats returns a snapshot of the checker counters
func (c *IntegrityChecker) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Reset clears counters and validity
func (c *IntegrityChecker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = Stats{}
	c.valid = false
}
