// SPDX-License-Identifier: MPL-2.0

// Package config handles cwltool configuration using Viper with CUE as the file format.
//
// Configuration is loaded from config.cue in the platform config directory
// ($XDG_CONFIG_HOME/cwltool on Linux, ~/Library/Application Support/cwltool on
// macOS, %APPDATA%\cwltool on Windows) or the current directory, validated
// against the embedded #Config schema, and overridden by CWLTOOL_* environment
// variables (CWLTOOL_ENGINE_WORKERS=4, CWLTOOL_LOG_LEVEL=debug).
package config
