package configuration

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const DefaultLanguage = "en"

// MessageTable maps a message key to its template
type MessageTable map[string]string

type NotificationConfig struct {
	// Language is used for recipients without a language of their own
	Language string `json:"language"`
	// Desktop additionally shows notifications via notify-send
	Desktop bool `json:"desktop"`
	// Messages overrides or extends the built-in catalog, per language
	Messages map[string]MessageTable `json:"messages"`
}

// messageTableHookFunc returns a decode hook that joins nested maps into dotted
// message keys. viper splits "limit.changed" into {limit: {changed: ...}} because
// "." is its key delimiter.
func messageTableHookFunc() mapstructure.DecodeHookFuncType {
	tableType := reflect.TypeOf(MessageTable{})

	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != tableType {
			return data, nil
		}
		result := MessageTable{}
		if err := flattenMessages("", data, result); err != nil {
			return nil, err
		}
		return result, nil
	}
}

func flattenMessages(prefix string, data interface{}, result MessageTable) error {
	switch value := data.(type) {
	case map[string]interface{}:
		for k, v := range value {
			if err := flattenMessages(joinKey(prefix, k), v, result); err != nil {
				return err
			}
		}
	case map[interface{}]interface{}:
		for k, v := range value {
			if err := flattenMessages(joinKey(prefix, fmt.Sprint(k)), v, result); err != nil {
				return err
			}
		}
	case MessageTable:
		for k, v := range value {
			result[joinKey(prefix, k)] = v
		}
	case map[string]string:
		for k, v := range value {
			result[joinKey(prefix, k)] = v
		}
	case string:
		if prefix == "" {
			return fmt.Errorf("message template without key: %s", value)
		}
		result[prefix] = value
	default:
		return fmt.Errorf("message %s: unsupported value type %T", prefix, data)
	}
	return nil
}

func joinKey(prefix string, key string) string {
	key = strings.ToLower(key)
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
