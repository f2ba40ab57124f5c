//go:build integration

package test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lerenn/hdfs-playground/pkg/config"
)

func TestRoundTripLocal(t *testing.T) {
	root := t.TempDir()
	suite.Run(t, &RoundTripSuite{
		Config: func() config.Config {
			return config.Config{
				Endpoint:  "file://" + root,
				Directory: "/tmp/hdfs-playground",
			}
		},
	})
}
