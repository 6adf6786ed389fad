/*
Package introspection provides diagnostic snapshots of the Rootstock object
graph for testing and tooling.

Snapshots capture an instance's current layout and storage sequence, or a
class's place in the inheritance and metaclass graphs. They are plain data:
YAML-encodable for golden files and debug dumps, and decodable from generic
maps a host may hand over. Snapshots are diagnostic only, not a stability
contract.
*/
package introspection
