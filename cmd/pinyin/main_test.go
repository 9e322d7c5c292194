package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

var fixtureFlags = []string{
	"--dict", filepath.Join("..", "..", "testdata", "fixture-table.csv"),
	"--dict-format", "keyed",
	"--patterns", filepath.Join("..", "..", "bundled", "data", "polyphones.txt"),
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	cmd := newRootCmd(strings.NewReader(stdin), out)
	cmd.SetArgs(append(append([]string{}, fixtureFlags...), args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertArgs(t *testing.T) {
	out, err := run(t, "", "convert", "--form", "marked", "我的目的地", "万俟")
	if err != nil {
		t.Fatal(err)
	}
	want := "wǒ de mù dì dì\nmò sì\n"
	if out != want {
		t.Fatalf("convert output mismatch: got %q, want %q", out, want)
	}
}

func TestConvertStdin(t *testing.T) {
	out, err := run(t, "好逸恶劳\n他用簸箕簸米。\n", "convert")
	if err != nil {
		t.Fatal(err)
	}
	want := "hao4 yi4 wu4 lao2\nta1 yong4 bo4 ji1 bo3 mi3 。\n"
	if out != want {
		t.Fatalf("convert output mismatch: got %q, want %q", out, want)
	}
}

func TestConvertUnknownForm(t *testing.T) {
	if _, err := run(t, "", "convert", "--form", "cursive", "我"); err == nil {
		t.Fatalf("expected error for unknown output form")
	}
}

func TestConvertNFC(t *testing.T) {
	compat := "\uf900" // compatibility ideograph for 豈
	out, err := run(t, "", "convert", compat)
	if err != nil {
		t.Fatal(err)
	}
	if out != compat+"\n" {
		t.Fatalf("input should pass through without --nfc, got %q", out)
	}
	out, err = run(t, "", "--nfc", "convert", compat)
	if err != nil {
		t.Fatal(err)
	}
	if out != "qi3\n" {
		t.Fatalf("expected qi3 with --nfc, got %q", out)
	}
}

func TestLookupExplain(t *testing.T) {
	out, err := run(t, "", "lookup", "--explain", "人参观")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{
		"人\tren2\tren2 (table)",
		"参\tcan1,shen1,cen1\tcan1 (resolver: 参观)",
		"观\tguan1,guan4\tguan1 (table)",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSearch(t *testing.T) {
	out, err := run(t, "", "search", "hao")
	if err != nil {
		t.Fatal(err)
	}
	want := "hao3\thǎo\t好\nhao4\thào\t好耗\n"
	if out != want {
		t.Fatalf("search output mismatch: got %q, want %q", out, want)
	}
	if _, err := run(t, "", "search", "qx"); err == nil {
		t.Fatalf("expected error for unknown prefix")
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "resolvers=42") {
		t.Fatalf("expected 42 resolvers to be reported, got %q", out)
	}
	if !strings.Contains(out, "warning: 行 has a resolver but no table entry") {
		t.Fatalf("expected warning for 行, got %q", out)
	}
}

func TestMissingDictionary(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := newRootCmd(strings.NewReader(""), out)
	cmd.SetArgs([]string{"--dict", "does-not-exist.csv", "check"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for missing dictionary file")
	}
}
