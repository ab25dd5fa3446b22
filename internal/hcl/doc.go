// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for parsing the file, evaluating expressions
// against the process environment and translating the result into the
// format-agnostic config.Model.
//
// A configuration file looks like:
//
//	input = "${env.HOME}/crops/input.txt"
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//
//	render {
//	  color   = "auto"
//	  planted = "{}"
//	  mowed   = "  "
//	}
//
// Every attribute and block is optional.
package hcl
