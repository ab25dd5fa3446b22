// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface for reading it from files.
//
// The `config.Model` covers the ambient settings of a run: where the
// instruction line comes from, how logs are written and how the field is
// rendered. The field itself is not configurable. Concrete loaders, such as
// for HCL and YAML, are provided in separate packages.
package config
