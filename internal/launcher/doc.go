// Package launcher implements delegation to the legacy Python sync
// module: it validates that the workspace's virtual-environment
// interpreter and the delegated module directory exist, then spawns the
// interpreter in run-module-as-script mode and propagates the child's
// exit code.
//
// The launch sequence is deliberately linear: two existence checks, one
// blocking child process, no retries. If either check fails, no child
// process is ever spawned. The process-spawn step is behind the Runner
// interface so the sequence can be verified without a real interpreter.
package launcher
