package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/chief-of-staff/internal/schemas"
)

var schemaFiles = []string{
	"okr_profile.schema.json",
	"style_guide.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestProfileSchema_AcceptsValidProfile(t *testing.T) {
	profile := `{
		"objectives": [
			{
				"label": "Platform Modernization",
				"key_results": [
					{"name": "Migrate services", "keywords": ["kubernetes"]}
				]
			}
		]
	}`

	schema, err := os.ReadFile("okr_profile.schema.json")
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(schema), profile))
}

func TestProfileSchema_RejectsEmptyObjectives(t *testing.T) {
	profile := `{"objectives": []}`

	schema, err := os.ReadFile("okr_profile.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), profile)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestStyleGuideSchema_AcceptsValidGuide(t *testing.T) {
	guide := `{
		"rules": [
			{
				"name": "bluf",
				"category": "Structure",
				"kind": "structural",
				"severity": "high",
				"check": "bluf",
				"issue": "Message doesn't lead with the main point",
				"suggestion": "Start with the conclusion."
			}
		]
	}`

	schema, err := os.ReadFile("style_guide.schema.json")
	require.NoError(t, err)

	assert.NoError(t, schemas.ValidateJSONString(string(schema), guide))
}

func TestStyleGuideSchema_RejectsUnknownSeverity(t *testing.T) {
	guide := `{
		"rules": [
			{
				"name": "bluf",
				"category": "Structure",
				"kind": "structural",
				"severity": "catastrophic",
				"issue": "x",
				"suggestion": "y"
			}
		]
	}`

	schema, err := os.ReadFile("style_guide.schema.json")
	require.NoError(t, err)

	err = schemas.ValidateJSONString(string(schema), guide)
	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
}
