//go:build unit

package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopLogger_Logf(t *testing.T) {
	logger := NewNoopLogger()

	// This should not panic or produce any output
	logger.Logf("test message")
	logger.Logf("test message with args: %s", "value")
}

func TestWriterLogger_Logf(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "[hpg] ")

	logger.Logf("connected to %s", "hdfs://namenode:8020")
	logger.Logf("done")

	assert.Equal(t, "[hpg] connected to hdfs://namenode:8020\n[hpg] done\n", buf.String())
}

func TestWriterLogger_ThreadSafety(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, "")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Logf("concurrent message from goroutine %d", id)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 10)
}

func TestTestingT_IsLogger(t *testing.T) {
	var logger Logger = t
	logger.Logf("routed through testing.T")
}
