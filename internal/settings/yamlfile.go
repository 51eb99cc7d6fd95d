package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	yamlReadFailureTemplateConstant  = "unable to read settings file %s: %w"
	yamlParseFailureTemplateConstant = "unable to parse settings file %s: %w"
	dottedKeyTemplateConstant        = "%s.%s"
)

// YAMLFile is a read-only source over a YAML document. Nested mappings are
// flattened into dotted keys on load, so the document
//
//	transform:
//	  chunk-size: 1024
//
// reports the key "transform.chunk-size". A missing file loads as an empty
// source.
type YAMLFile struct {
	CachingSource
	filePath string
}

// NewYAMLFile returns a source reading settings from the given file path.
func NewYAMLFile(filePath string) *YAMLFile {
	return &YAMLFile{filePath: filePath}
}

// FilePath returns the path of the underlying document.
func (source *YAMLFile) FilePath() string {
	return source.filePath
}

// Writable reports false.
func (source *YAMLFile) Writable() bool {
	return false
}

// Set is rejected; the document is read-only.
func (source *YAMLFile) Set(string, Setting) error {
	return ErrSourceNotWritable
}

// Delete is rejected; the document is read-only.
func (source *YAMLFile) Delete(string) error {
	return ErrSourceNotWritable
}

// Load reads and flattens the document into the cache.
func (source *YAMLFile) Load() error {
	documentBytes, readError := os.ReadFile(source.filePath)
	if readError != nil {
		if os.IsNotExist(readError) {
			return nil
		}
		return fmt.Errorf(yamlReadFailureTemplateConstant, source.filePath, readError)
	}
	var document map[string]any
	if parseError := yaml.Unmarshal(documentBytes, &document); parseError != nil {
		return fmt.Errorf(yamlParseFailureTemplateConstant, source.filePath, parseError)
	}
	source.flattenInto("", document)
	return nil
}

func (source *YAMLFile) flattenInto(keyPrefix string, document map[string]any) {
	for documentKey, documentValue := range document {
		flattenedKey := documentKey
		if len(keyPrefix) > 0 {
			flattenedKey = fmt.Sprintf(dottedKeyTemplateConstant, keyPrefix, documentKey)
		}
		if nestedMapping, isMapping := documentValue.(map[string]any); isMapping {
			source.flattenInto(flattenedKey, nestedMapping)
			continue
		}
		_ = source.CachingSource.Set(flattenedKey, NewSetting(documentValue))
	}
}
