package models

import (
	"reflect"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/mitchellh/mapstructure"
)

var volumeTypeType = reflect.TypeOf(types.VolumeType(""))

// StringToVolumeTypeHookFunc normalizes strings decoded into a
// types.VolumeType, so " ST1" and "st1" end up the same.
func StringToVolumeTypeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != volumeTypeType {
			return data, nil
		}

		raw := reflect.ValueOf(data).String()

		return types.VolumeType(strings.ToLower(strings.TrimSpace(raw))), nil
	}
}
