// Package flowlm is a research harness for studying how well large
// language models route traffic on capacitated networks.
//
// The harness generates random connected Waxman topologies, serializes
// them as GML, and formulates bandwidth demands between node pairs. A
// demand set can then be routed three ways:
//
//   - baseline: each demand takes its k-th shortest path (Yen's
//     algorithm over Dijkstra), the classical reference point;
//   - optimal: brute-force enumeration of simple paths picks the route
//     minimizing the maximum link utilization (MLU);
//   - solve: an OpenAI-compatible chat model receives the topology and
//     demands as text and replies with a routing plan.
//
// Any plan, wherever it came from, is parsed by the routing package and
// evaluated for feasibility (no link loaded past its capacity) and MLU,
// making model output directly comparable with the classical answers.
//
// Package layout:
//
//	core       — mutex-guarded undirected graph with positions, weights, capacities
//	builder    — functional-options topology construction (Waxman, fixtures)
//	gml        — GML encode/decode
//	kshortest  — Yen's k-shortest loopless paths
//	maxflow    — Edmonds–Karp admissibility bound
//	routing    — demands, plan grammar, evaluation, brute-force optimum
//	llm        — prompt templating and chat-completions client
//	cmd/flowlm — the CLI tying it all together
package flowlm
