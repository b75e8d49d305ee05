package schemas

import (
	"embed"
	"fmt"
)

//go:embed *.schema.json
var schemaFS embed.FS

// Embedded schema names accepted by Validate.
const (
	ResumeWriterRequest  = "resume_writer_request"
	ResumeWriterResponse = "resume_writer_response"
	JobPosting           = "job_posting"
	SourcingAck          = "sourcing_ack"
	ExtractedElements    = "extracted_elements"
	SemanticMatches      = "semantic_matches"
)

// schemaByName returns the embedded schema content for a known schema name.
func schemaByName(name string) (string, error) {
	data, err := schemaFS.ReadFile(name + ".schema.json")
	if err != nil {
		return "", &SchemaLoadError{
			Name:    name,
			Message: fmt.Sprintf("unknown schema %q", name),
			Cause:   err,
		}
	}
	return string(data), nil
}
