package worker

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/credlens/credlens/internal/model"
)

// mockVerifier implements Verifier
type mockVerifier struct {
	ShouldError bool
}

func (m *mockVerifier) Verify(ctx context.Context, input string) (*model.VerificationResult, error) {
	time.Sleep(10 * time.Millisecond)
	if m.ShouldError {
		return nil, errors.New("verify error")
	}
	return &model.VerificationResult{
		ExtractedClaim: input,
		Verdict:        model.VerdictUnverified,
	}, nil
}

func TestBatchProcessor_ProcessInputs(t *testing.T) {
	processor := NewBatchProcessor(&mockVerifier{}, 2)

	inputs := []string{
		"The Earth is round.",
		"Vaccines cause autism.",
		"http://example.com/article",
	}

	outcomes := processor.ProcessInputs(context.Background(), inputs)

	if len(outcomes) != 3 {
		t.Errorf("expected 3 outcomes, got %d", len(outcomes))
	}

	for _, o := range outcomes {
		if o.Error != nil {
			t.Errorf("unexpected error for %q: %v", o.Input, o.Error)
		}
		if o.Result == nil {
			t.Errorf("expected result for %q", o.Input)
		}
	}
}

func TestBatchProcessor_ProcessInputs_Error(t *testing.T) {
	processor := NewBatchProcessor(&mockVerifier{ShouldError: true}, 2)

	outcomes := processor.ProcessInputs(context.Background(), []string{"a claim"})

	if len(outcomes) != 1 {
		t.Fatalf("expected 1 outcome, got %d", len(outcomes))
	}

	if outcomes[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if outcomes[0].Result != nil {
		t.Error("expected nil result on error")
	}
}

func TestBatchProcessor_ProcessInputs_Empty(t *testing.T) {
	processor := NewBatchProcessor(&mockVerifier{}, 2)

	outcomes := processor.ProcessInputs(context.Background(), []string{})
	if len(outcomes) != 0 {
		t.Errorf("expected 0 outcomes, got %d", len(outcomes))
	}
}

func TestReadInputsFromFile(t *testing.T) {
	content := `The Earth is round.
# comment
http://example.com/article

Drinking bleach cures infections.   `

	tmpfile, err := os.CreateTemp("", "inputs")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	inputs, err := ReadInputsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadInputsFromFile failed: %v", err)
	}

	expected := []string{
		"The Earth is round.",
		"http://example.com/article",
		"Drinking bleach cures infections.",
	}
	if len(inputs) != len(expected) {
		t.Fatalf("expected %d inputs, got %d", len(expected), len(inputs))
	}

	for i, input := range inputs {
		if input != expected[i] {
			t.Errorf("expected %q at index %d, got %q", expected[i], i, input)
		}
	}
}

func TestReadInputsFromFile_NonExistent(t *testing.T) {
	_, err := ReadInputsFromFile("non_existent_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestVerifyOutcome_GetError(t *testing.T) {
	o1 := &VerifyOutcome{Input: "a claim"}
	if o1.GetError() != nil {
		t.Errorf("expected nil error, got %v", o1.GetError())
	}

	expected := errors.New("verify failed")
	o2 := &VerifyOutcome{Input: "a claim", Error: expected}
	if o2.GetError() != expected {
		t.Errorf("expected %v, got %v", expected, o2.GetError())
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	content := "The Earth is round.\nVaccines are safe.\n# comment\n\nhttp://example.com\n"

	tmpfile, err := os.CreateTemp("", "batch_inputs")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(&mockVerifier{}, 2)

	outcomes, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}

	if len(outcomes) != 3 {
		t.Errorf("expected 3 outcomes, got %d", len(outcomes))
	}
}

func TestBatchProcessor_ProcessFile_NonExistent(t *testing.T) {
	processor := NewBatchProcessor(&mockVerifier{}, 2)

	_, err := processor.ProcessFile(context.Background(), "no_such_file.txt")
	if err == nil {
		t.Error("expected error for non-existent file, got nil")
	}
}

func TestBatchProcessor_ProcessFile_Empty(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "empty_inputs")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(&mockVerifier{}, 2)

	outcomes, err := processor.ProcessFile(context.Background(), tmpfile.Name())
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(outcomes) != 0 {
		t.Errorf("expected 0 outcomes for empty file, got %d", len(outcomes))
	}
}

func TestReadInputsFromFile_Deduplication(t *testing.T) {
	content := `The Earth is round.
The Earth is round.`

	tmpfile, err := os.CreateTemp("", "inputs_dedup")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Remove(tmpfile.Name()) }()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	inputs, err := ReadInputsFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadInputsFromFile failed: %v", err)
	}

	if len(inputs) != 1 {
		t.Errorf("expected 1 input after deduplication, got %d", len(inputs))
	}
}
