package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/credlens/credlens/internal/model"
)

// Verifier verifies a single input, either a bare claim or an article URL
type Verifier interface {
	Verify(ctx context.Context, input string) (*model.VerificationResult, error)
}

// VerifyJob verifies one input through the pool
type VerifyJob struct {
	Input    string
	Verifier Verifier
}

// Execute runs the verification
func (j *VerifyJob) Execute(ctx context.Context) Result {
	result, err := j.Verifier.Verify(ctx, j.Input)
	if err != nil {
		return &VerifyOutcome{
			Input: j.Input,
			Error: err,
		}
	}
	return &VerifyOutcome{
		Input:  j.Input,
		Result: result,
	}
}

// VerifyOutcome pairs an input with its verification result or error
type VerifyOutcome struct {
	Input  string
	Result *model.VerificationResult
	Error  error
}

// GetError returns the verification error, if any
func (o *VerifyOutcome) GetError() error {
	return o.Error
}

// BatchProcessor verifies many inputs concurrently
type BatchProcessor struct {
	verifier    Verifier
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(verifier Verifier, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		verifier:    verifier,
		concurrency: concurrency,
	}
}

// ProcessInputs verifies the inputs concurrently and returns one outcome per
// input. Order follows completion, not submission.
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []string) []*VerifyOutcome {
	if len(inputs) == 0 {
		return []*VerifyOutcome{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, input := range inputs {
		pool.Submit(&VerifyJob{
			Input:    input,
			Verifier: b.verifier,
		})
	}

	results := pool.Wait()

	outcomes := make([]*VerifyOutcome, len(results))
	for i, result := range results {
		outcomes[i] = result.(*VerifyOutcome)
	}

	return outcomes
}

// ProcessFile reads inputs from a file and verifies them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*VerifyOutcome, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return b.ProcessInputs(ctx, inputs), nil
}

// ReadInputsFromFile reads one claim or URL per line, skipping blank lines
// and comments, deduplicating exact repeats
func ReadInputsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}
