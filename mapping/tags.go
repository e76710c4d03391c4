package mapping

import (
	"strings"
)

// FieldTag is the key: values pair for the given field struct's tag.
type FieldTag struct {
	Key    string
	Values []string
}

// ExtractFieldTags extracts the neuron field tags from the struct field.
func (s *StructField) ExtractFieldTags() []*FieldTag {
	return extractFieldTags(s.reflectField.Tag.Get(AnnotationNeuron))
}

// extractFieldTags parses the tag in the form:
//
// 	type Model struct {
//		Field string `neuron:"type=relation;foreign=UserID,_;many2many"`
//	}
func extractFieldTags(tag string) []*FieldTag {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return nil
	}
	if tag == AnnotationIgnore {
		return []*FieldTag{{Key: AnnotationIgnore}}
	}

	var tags []*FieldTag
	for _, option := range strings.Split(tag, AnnotationTagSeparator) {
		option = strings.TrimSpace(option)
		if option == "" {
			continue
		}

		ft := &FieldTag{}
		if i := strings.Index(option, AnnotationTagEqual); i > 0 {
			ft.Key = strings.TrimSpace(option[:i])
			for _, v := range strings.Split(option[i+1:], AnnotationValueSeparator) {
				ft.Values = append(ft.Values, strings.TrimSpace(v))
			}
		} else {
			ft.Key = option
		}
		tags = append(tags, ft)
	}
	return tags
}

func tagValues(tags []*FieldTag) map[string][]string {
	values := make(map[string][]string, len(tags))
	for _, t := range tags {
		values[t.Key] = append(values[t.Key], t.Values...)
	}
	return values
}
