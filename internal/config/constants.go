package config

// Base application details
const AppName = "quill"
const DefaultConfigFileName = "config.toml"

// UI Layout
const StatusBarHeight = 1
const PromptHeight = 1

// These could be moved to NewDefaultConfig(), keeping here for now
const DefaultMaxHistory = 1000
const DefaultGutter = true
