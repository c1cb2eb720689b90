// Package scenario holds the fixed benchmark workloads.
package scenario

import "github.com/dontdude/massbench/internal/domain"

// Defaults returns the benchmark scenarios in report order: the literal
// workload for both engines, then the complex workload for both engines.
// Each source is a self-contained Rust program; the repetition counts are
// what makes the allocation pressure large enough for massif to resolve.
func Defaults() []domain.Scenario {
	return []domain.Scenario{
		{Name: "rexile_literal", Source: rexileLiteral},
		{Name: "regex_literal", Source: regexLiteral},
		{Name: "rexile_complex", Source: rexileComplex},
		{Name: "regex_complex", Source: regexComplex},
	}
}

const rexileLiteral = `
extern crate rexile;
use rexile::Pattern;

fn main() {
    let patterns: Vec<&str> = vec!["hello"; 1000];
    let mut results = Vec::new();

    for pattern in patterns {
        let re = Pattern::new(pattern).unwrap();
        results.push(re.is_match("hello world"));
    }

    println!("Matched: {}", results.iter().filter(|&&x| x).count());
}
`

const regexLiteral = `
extern crate regex;
use regex::Regex;

fn main() {
    let patterns: Vec<&str> = vec!["hello"; 1000];
    let mut results = Vec::new();

    for pattern in patterns {
        let re = Regex::new(pattern).unwrap();
        results.push(re.is_match("hello world"));
    }

    println!("Matched: {}", results.iter().filter(|&&x| x).count());
}
`

const rexileComplex = `
extern crate rexile;
use rexile::Pattern;

fn main() {
    let patterns: Vec<&str> = vec![r"\d+", r"\w+", "[a-z]+", "^hello", "world$"];
    let text = "hello 123 world abc";
    let mut results = Vec::new();

    for _ in 0..200 {
        for pattern in &patterns {
            let re = Pattern::new(pattern).unwrap();
            results.push(re.is_match(text));
        }
    }

    println!("Matched: {}", results.iter().filter(|&&x| x).count());
}
`

const regexComplex = `
extern crate regex;
use regex::Regex;

fn main() {
    let patterns: Vec<&str> = vec![r"\d+", r"\w+", "[a-z]+", "^hello", "world$"];
    let text = "hello 123 world abc";
    let mut results = Vec::new();

    for _ in 0..200 {
        for pattern in &patterns {
            let re = Regex::new(pattern).unwrap();
            results.push(re.is_match(text));
        }
    }

    println!("Matched: {}", results.iter().filter(|&&x| x).count());
}
`
