package content

import (
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrMalformed marks a content model that cannot be rendered.
var ErrMalformed = errors.New("malformed content model")

// DefaultLang is used when a content file names no language.
const DefaultLang = "en"

// Load reads the content model from a YAML (or JSON) file.
func Load(path string) (model Model, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return model, err
	}

	model, err = Parse(fileData)
	if err != nil {
		err = errors.Wrapf(err, "failed to load content file: %s", path)
		return model, err
	}

	return model, err
}

// Parse decodes and validates a content document.
func Parse(data []byte) (model Model, err error) {
	err = yaml.Unmarshal(data, &model)
	if err != nil {
		err = errors.Wrapf(ErrMalformed, "failed to parse content: %v", err)
		return model, err
	}

	model = model.WithDefaults()

	err = model.Validate()
	if err != nil {
		err = errors.Wrap(err, "content validation failed")
		return model, err
	}

	return model, err
}

// WithDefaults returns a copy with the language, labels and extra section
// ids filled in.
func (m Model) WithDefaults() (out Model) {
	out = m
	if out.Lang == "" {
		out.Lang = DefaultLang
	}
	out.Labels = out.Labels.withDefaults()

	if len(m.Extras) > 0 {
		out.Extras = make([]Section, len(m.Extras))
		for i, section := range m.Extras {
			if section.ID == "" {
				section.ID = Slug(section.Title)
			}
			if section.ID == "" {
				section.ID = "section-" + strconv.Itoa(i+1)
			}
			out.Extras[i] = section
		}
	}

	return out
}

// Validate checks that the model is well-formed enough to render.
func (m *Model) Validate() (err error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err = validate.Struct(m)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			err = errors.Wrapf(ErrMalformed, "%s failed %q check", fe.Namespace(), fe.Tag())
			return err
		}
		err = errors.Wrap(ErrMalformed, err.Error())
		return err
	}

	_, err = language.Parse(m.Lang)
	if err != nil {
		err = errors.Wrapf(ErrMalformed, "invalid language tag %q: %v", m.Lang, err)
		return err
	}

	return err
}

// Tag returns the parsed document language, falling back to English.
func (m *Model) Tag() (tag language.Tag) {
	tag, err := language.Parse(m.Lang)
	if err != nil {
		tag = language.English
	}
	return tag
}

// Slug turns a title into a fragment-safe section id.
func Slug(title string) (slug string) {
	slug = strings.ToLower(title)

	slug = strings.Map(func(r rune) (result rune) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result = r
			return result
		}
		result = '-'
		return result
	}, slug)

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	slug = strings.Trim(slug, "-")

	return slug
}

// UnmarshalYAML decodes a mapping of category to skill list, keeping the
// document order.
func (s *Skills) UnmarshalYAML(node *yaml.Node) (err error) {
	if node.Kind != yaml.MappingNode {
		err = errors.Errorf("line %d: skills must be a mapping of category to list", node.Line)
		return err
	}

	seen := make(map[string]bool, len(node.Content)/2)
	categories := make(Skills, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		name := keyNode.Value
		if seen[name] {
			err = errors.Errorf("line %d: skill category %q already defined", keyNode.Line, name)
			return err
		}
		seen[name] = true

		var list []string
		err = valueNode.Decode(&list)
		if err != nil {
			err = errors.Wrapf(err, "line %d: skill category %q", valueNode.Line, name)
			return err
		}

		categories = append(categories, SkillCategory{Name: name, Skills: list})
	}

	*s = categories
	return err
}

// MarshalYAML encodes the skills back into an ordered mapping.
func (s Skills) MarshalYAML() (result interface{}, err error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

	for _, category := range s {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: category.Name}

		valueNode := &yaml.Node{}
		err = valueNode.Encode(category.Skills)
		if err != nil {
			err = errors.Wrapf(err, "failed to encode skill category %q", category.Name)
			return result, err
		}

		mapping.Content = append(mapping.Content, keyNode, valueNode)
	}

	result = mapping
	return result, err
}

// Names returns the category names in order.
func (s Skills) Names() (names []string) {
	names = make([]string, len(s))
	for i, category := range s {
		names[i] = category.Name
	}
	return names
}

// WriteSample writes a content file for the built-in sample model.
func WriteSample(path string) (err error) {
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("content file already exists: %s", path)
		return err
	}

	var data []byte
	data, err = yaml.Marshal(Default())
	if err != nil {
		err = errors.Wrap(err, "failed to marshal sample content")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write content file: %s", path)
		return err
	}

	return err
}
