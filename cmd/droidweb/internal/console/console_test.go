package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinterRoutesStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := &Printer{Out: &out, Err: &errOut}

	p.Step("🚀", "Creating Android project: %s", "demo")
	p.Exec("gradle init")
	p.Success("Project created successfully!")
	p.Info("Created %s", "build.gradle")
	p.Error("MainActivity.java not found!")
	p.Warn("skipping")
	p.Hint("install gradle")

	for _, want := range []string{
		"🚀 Creating Android project: demo",
		"🔹 Executing: gradle init",
		"✅ Project created successfully!",
		"  Created build.gradle",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stdout missing %q:\n%s", want, out.String())
		}
	}
	for _, want := range []string{"❌ MainActivity.java not found!", "skipping", "install gradle"} {
		if !strings.Contains(errOut.String(), want) {
			t.Errorf("stderr missing %q:\n%s", want, errOut.String())
		}
	}
	if strings.Contains(out.String(), "not found") {
		t.Error("errors must not go to stdout")
	}
}

func TestMarkdownPlainWithoutColor(t *testing.T) {
	var out bytes.Buffer
	p := &Printer{Out: &out, Err: &out}
	p.Markdown("# Next steps\n")
	if out.String() != "# Next steps\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestDiscard(t *testing.T) {
	p := Discard()
	p.Success("nothing")
	p.Error("nothing")
}
