// Package transition provides a registry of normalized easing curves, also
// known as transitions. A transition maps a progress fraction, the ratio of
// elapsed time in an animation, to an output weight that is used to
// interpolate a value. It was designed to serve animation engines that sample
// a curve once per frame, but it has no dependencies on any such engine.
//
// # Curves
//
// A curve is a [Func], a pure function of the progress fraction p and
// optional, curve-specific trailing parameters. Parameters that aren't
// provided take the curve's defaults, so every curve can be called with just
// p.
//
// This package includes the following curves:
//   - [Linear]
//   - [Pow], and its aliases [Quad], [Cubic], [Quart] and [Quint]
//   - [Expo]
//   - [Circ]
//   - [Sine]
//   - [Back]
//   - [Bounce]
//   - [Elastic]
//   - [CubicBezier], the timing function known from CSS
//
// Generally, p is in the range [0, 1], and most curves map 0 to 0 and 1 to 1.
// Curves never clamp p, however, and callers may pass values outside [0, 1]
// to extrapolate. Not all curves stay within [0, 1] for p in [0, 1], either:
// [Back] and [Elastic] overshoot deliberately. See [Range] for finding a
// curve's output range.
//
// Curves don't validate their inputs. Out-of-domain values, such as p
// outside [-1, 1] for [Circ], produce whatever IEEE 754 arithmetic produces,
// typically NaN or infinities.
//
// # Variants
//
// The curves above are raw curves, shaped to accelerate from 0 ("ease in").
// [Derive] mechanically derives the three canonical variants of a raw curve,
// collected in a [Family]:
//
//   - ease-in is the raw curve itself
//   - ease-out is the complement of the raw curve on the complemented input,
//     1 - raw(1 - p)
//   - ease-in-out eases in during the first half and out during the second
//     half
//
// # Binding parameters
//
// [Bind] fixes a curve's parameters, returning a [Bound] curve that only
// needs p. Binding is a pure operation: it neither affects the base curve nor
// other bound curves, so each use site can customize a shared curve, for
// example the amplitude of [Elastic] or the overshoot of [Back], once and
// then evaluate it on every frame.
//
// Both [Func] and [Bound] implement [Easer].
//
// # Registry
//
// A [Registry] maps curve names to their variants. [Registry.RegisterFamily]
// derives and installs the variants of a raw curve, while
// [Registry.RegisterBare] installs a single curve without derivation; the
// built-in linear curve is bare, as it is its own inverse. Variants are looked
// up by name and [Mode] with [Registry.Lookup], or by paths such as
// "Quad.easeIn" with [Registry.LookupPath]. Unknown names and modes result in
// [ErrNotFound]; no fallback curve is substituted.
//
// [Default] returns a process-wide registry that is populated with the
// built-in curves exactly once, before its first use. Registries are safe for
// concurrent use, but they are meant to be written once and read afterwards.
//
// # Sampling
//
// [Sample] evaluates a curve at evenly spaced progress fractions, and
// [WriteSVG] turns those samples into SVG path data for plotting.
package transition
