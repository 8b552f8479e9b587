package version

// Version is the release tag stamped into --version output.
const Version = "0.4.0"
