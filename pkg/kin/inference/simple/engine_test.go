package simple

import (
	"testing"

	"github.com/famlogic/kin/pkg/kin/inference"
	"github.com/famlogic/kin/pkg/kin/inference/enginetest"
)

func TestConformance(t *testing.T) {
	enginetest.Run(t, func(t *testing.T) inference.Engine {
		return New()
	})
}
