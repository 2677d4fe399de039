// Package risk implements the explainable transaction risk scorer: a fixed
// weighted blend of five normalized signals, amplified for dangerous
// combinations, with a human-readable reason for every contributing factor.
package risk
