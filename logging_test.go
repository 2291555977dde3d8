package minicore_test

import (
	"testing"

	"github.com/go-theft-auto/minicore"
)

func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { minicore.SetVerbose(false) })

	minicore.SetVerbose(true)
	if !minicore.Verbose() {
		t.Error("Verbose() = false after SetVerbose(true)")
	}
	minicore.SetVerbose(false)
	if minicore.Verbose() {
		t.Error("Verbose() = true after SetVerbose(false)")
	}
}
