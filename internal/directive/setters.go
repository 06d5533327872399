package directive

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/vk/scriptpipe/internal/ctxlog"
	"github.com/vk/scriptpipe/internal/param"
)

// attrSetter applies one recognised attribute value to an item.
type attrSetter func(ctx context.Context, res Resolver, it *param.Item, value string) error

// attrSetters is the closed attribute vocabulary. Keys are lower-case;
// dispatch is case-insensitive. Any key outside this table is an
// UnknownAttributeError.
var attrSetters = map[string]attrSetter{
	"callback": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		it.Callback = value
		return nil
	},
	"choices": func(_ context.Context, res Resolver, it *param.Item, value string) error {
		choices, err := ParseChoices(res, value, it.Type)
		if err != nil {
			return err
		}
		it.Choices = choices
		return nil
	},
	"columns": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		columns, err := strconv.Atoi(value)
		if err != nil {
			return &SyntaxError{Directive: "columns=" + value}
		}
		it.Columns = columns
		return nil
	},
	"description": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		it.Description = value
		return nil
	},
	"initializer": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		it.Initializer = value
		return nil
	},
	"type": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		kind, ok := param.ParseIOKind(value)
		if !ok {
			return &SyntaxError{Directive: "type=" + value}
		}
		it.Kind = kind
		return nil
	},
	"label": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		it.Label = value
		return nil
	},
	"max": func(_ context.Context, res Resolver, it *param.Item, value string) error {
		val, err := res.Convert(value, it.Type)
		if err != nil {
			return err
		}
		it.Max = &val
		return nil
	},
	"min": func(_ context.Context, res Resolver, it *param.Item, value string) error {
		val, err := res.Convert(value, it.Type)
		if err != nil {
			return err
		}
		it.Min = &val
		return nil
	},
	"name": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		it.Name = value
		return nil
	},
	"persist": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		persisted, err := strconv.ParseBool(value)
		if err != nil {
			return &SyntaxError{Directive: "persist=" + value}
		}
		it.Persisted = persisted
		return nil
	},
	"persistkey": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		it.PersistKey = value
		return nil
	},
	"required": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		required, err := strconv.ParseBool(value)
		if err != nil {
			return &SyntaxError{Directive: "required=" + value}
		}
		it.Required = required
		return nil
	},
	"softmax": func(_ context.Context, res Resolver, it *param.Item, value string) error {
		val, err := res.Convert(value, it.Type)
		if err != nil {
			return err
		}
		it.SoftMax = &val
		return nil
	},
	"softmin": func(_ context.Context, res Resolver, it *param.Item, value string) error {
		val, err := res.Convert(value, it.Type)
		if err != nil {
			return err
		}
		it.SoftMin = &val
		return nil
	},
	"stepsize": func(ctx context.Context, _ Resolver, it *param.Item, value string) error {
		stepSize, err := strconv.ParseFloat(value, 64)
		if err != nil {
			// An invalid stepSize is a warning, not a parse failure; the
			// attribute is simply ignored.
			ctxlog.FromContext(ctx).Warn("Script parameter has an invalid stepSize.",
				"parameter", it.Name, "stepSize", value)
			return nil
		}
		it.StepSize = stepSize
		return nil
	},
	"style": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		it.Style = value
		return nil
	},
	"visibility": func(_ context.Context, _ Resolver, it *param.Item, value string) error {
		visibility, ok := param.ParseVisibility(value)
		if !ok {
			return &SyntaxError{Directive: "visibility=" + value}
		}
		it.Visibility = visibility
		return nil
	},
	"value": func(_ context.Context, res Resolver, it *param.Item, value string) error {
		val, err := res.Convert(value, it.Type)
		if err != nil {
			return err
		}
		it.Default = &val
		return nil
	},
}

// applyAttrs dispatches every parsed attribute through the setter table.
// Keys are applied in sorted order so extraction is deterministic even
// though the attribute map is unordered.
func applyAttrs(ctx context.Context, res Resolver, it *param.Item, attrs map[string]string) error {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		setter, ok := attrSetters[strings.ToLower(key)]
		if !ok {
			return &UnknownAttributeError{Key: key}
		}
		if err := setter(ctx, res, it, attrs[key]); err != nil {
			return err
		}
	}
	return nil
}
