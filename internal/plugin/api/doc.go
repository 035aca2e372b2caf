// Package api exposes the conversion engine to Lua scripts.
//
// Scripts see a single global table `iso` with functions for direct
// table conversion, format decode/encode through a registry, format
// detection, and registration of custom rule tables.
package api
