// Package core contains the execution plumbing shared by the chain and dyn
// packages: stage descriptors, the observer hook and the logger carried in a
// context. It does not define how stages are composed; it only wraps the
// running of a single stage so every executor reports it the same way.
package core
