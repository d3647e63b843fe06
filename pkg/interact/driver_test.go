package interact_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-promptgen/pkg/component"
	"github.com/goliatone/go-promptgen/pkg/interact"
)

// scriptDriver answers prompts from a canned message-to-answer map and
// records which prompts were shown.
type scriptDriver struct {
	answers  map[string]string
	confirms map[string]bool
	asked    []string
}

func (d *scriptDriver) Input(cfg interact.InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	return d.answers[cfg.Message], nil
}

func (d *scriptDriver) Confirm(cfg interact.ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	return d.confirms[cfg.Message], nil
}

func TestFill_PromptsOnlyForUnboundRequiredFields(t *testing.T) {
	def := component.MustDefine("Profile", component.WithFields(
		component.Field("name", component.TypeString),
		component.Field("age", component.TypeInt),
		component.OptField("zone", component.TypeString, "utc"),
	))

	driver := &scriptDriver{answers: map[string]string{
		"Profile.age": "42",
	}}
	filler := interact.New(interact.WithDriver(driver))

	inst, err := filler.Fill(def, component.Values{"name": "ada"})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	if len(driver.asked) != 1 || driver.asked[0] != "Profile.age" {
		t.Fatalf("expected a single prompt for age, got %v", driver.asked)
	}

	age, _ := inst.Get("age")
	if age != 42 {
		t.Fatalf("expected the answer converted to int 42, got %v (%T)", age, age)
	}
	zone, _ := inst.Get("zone")
	if zone != "utc" {
		t.Fatalf("optional field should keep its default, got %v", zone)
	}
}

func TestFill_BoolFieldsUseConfirmPrompt(t *testing.T) {
	def := component.MustDefine("Toggle", component.WithFields(
		component.Field("enabled", component.TypeBool),
	))

	driver := &scriptDriver{confirms: map[string]bool{
		"Toggle.enabled": true,
	}}
	filler := interact.New(interact.WithDriver(driver))

	inst, err := filler.Fill(def, nil)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	enabled, _ := inst.Get("enabled")
	if enabled != true {
		t.Fatalf("expected confirm answer bound, got %v", enabled)
	}
}

func TestFill_NonNumericAnswerForIntFieldFails(t *testing.T) {
	def := component.MustDefine("Counter", component.WithFields(
		component.Field("count", component.TypeInt),
	))

	driver := &scriptDriver{answers: map[string]string{
		"Counter.count": "lots",
	}}
	filler := interact.New(interact.WithDriver(driver))

	_, err := filler.Fill(def, nil)
	if err == nil || !strings.Contains(err.Error(), "expects an integer") {
		t.Fatalf("expected integer conversion error, got %v", err)
	}
}

func TestFill_FloatAnswersAreParsed(t *testing.T) {
	def := component.MustDefine("Gauge", component.WithFields(
		component.Field("level", component.TypeFloat),
	))

	driver := &scriptDriver{answers: map[string]string{
		"Gauge.level": "0.75",
	}}
	filler := interact.New(interact.WithDriver(driver))

	inst, err := filler.Fill(def, nil)
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	level, _ := inst.Get("level")
	if level != 0.75 {
		t.Fatalf("expected 0.75, got %v", level)
	}
}
