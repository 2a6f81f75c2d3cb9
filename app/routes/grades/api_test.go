package grades

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBatchResponseSuccess(t *testing.T) {
	result := BatchResult{Created: 3, Updated: 1, SkippedExisting: 2}

	status, body := batchResponse(result, nil)

	if status != fiber.StatusOK {
		t.Errorf("status = %d, want %d", status, fiber.StatusOK)
	}
	if body["success"] != true {
		t.Errorf("success = %v, want true", body["success"])
	}
	if body["message"] != "Grades processed" {
		t.Errorf("message = %v", body["message"])
	}
	if body["created"] != 3 || body["updated"] != 1 || body["skippedExisting"] != 2 {
		t.Errorf("counts not reported: %v", body)
	}
}

func TestBatchResponseRecomputeFailure(t *testing.T) {
	result := BatchResult{Created: 2, SkippedExisting: 1}

	status, body := batchResponse(result, fmt.Errorf("recompute failed"))

	if status != fiber.StatusInternalServerError {
		t.Errorf("a failed recompute must not report success, got status %d", status)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if body["message"] != "Grades saved but ranking recompute failed" {
		t.Errorf("message = %v, want the stale-snapshot message", body["message"])
	}
	// the writes committed, so the counts must still reach the caller
	if body["created"] != 2 || body["skippedExisting"] != 1 {
		t.Errorf("counts lost on recompute failure: %v", body)
	}
}
