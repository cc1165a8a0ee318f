// Package box exposes the standard operations of primitive values through a
// Result wrapper, delegating to strings and strconv. Each function is sticky:
// a failed input passes through without evaluating, keeping the original
// failure's identity even across type changes (via FailFrom).
package box
