package repositories

import (
	"fmt"
	"testing"
	"time"
)

func TestNextDocumentNoFirstOfDay(t *testing.T) {
	today := time.Now().Format("060102")

	got := nextDocumentNo("", "GP")
	want := fmt.Sprintf("GP%s0001", today)
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}

func TestNextDocumentNoIncrementsSameDay(t *testing.T) {
	today := time.Now().Format("060102")

	got := nextDocumentNo(fmt.Sprintf("GRN%s0041", today), "GRN")
	want := fmt.Sprintf("GRN%s0042", today)
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}

func TestNextDocumentNoResetsOnNewDay(t *testing.T) {
	today := time.Now().Format("060102")

	got := nextDocumentNo("RP2001010099", "RP")
	want := fmt.Sprintf("RP%s0001", today)
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}

func TestNextDocumentNoIgnoresForeignSeries(t *testing.T) {
	today := time.Now().Format("060102")

	got := nextDocumentNo("GP"+today+"0007", "GRN")
	want := fmt.Sprintf("GRN%s0001", today)
	if got != want {
		t.Fatalf("expected %s got %s", want, got)
	}
}
