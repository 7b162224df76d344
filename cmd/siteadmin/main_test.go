package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingCloser struct {
	name  string
	order *[]string
}

func (c recordingCloser) Close() error {
	*c.order = append(*c.order, c.name)
	return nil
}

func TestInterrupted_ClosesAllBeforeExit(t *testing.T) {
	var order []string
	code := interrupted(recordingCloser{"db", &order}, recordingCloser{"log", &order})

	assert.Equal(t, exitInterrupted, code)
	assert.Equal(t, []string{"db", "log"}, order)
}
