// Package harness provides utilities for integration testing the pitmaster CLI.
// It handles binary compilation, environment isolation, command execution and
// a fake prediction service the binary can talk to.
//
// Environment variables managed:
//   - PITMASTER_HOME: Isolated per test (temp directory)
//   - PITMASTER_DEBUG: Disabled to reduce noise
//   - PITMASTER_ALARMS: Disabled so tests stay silent
//   - PITMASTER_API_URL: Points at the fake service when one is attached
package harness
