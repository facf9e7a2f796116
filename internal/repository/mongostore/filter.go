package mongostore

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aura/internal/query"
)

// matchNothing is a filter no document satisfies
var matchNothing = bson.M{"_id": bson.M{"$in": bson.A{}}}

// translate renders a predicate tree as a filter document
func translate(p query.Predicate) (bson.M, error) {
	switch n := p.(type) {
	case nil:
		return bson.M{}, nil
	case query.And:
		if len(n) == 0 {
			return bson.M{}, nil
		}
		if len(n) == 1 {
			return translate(n[0])
		}
		clauses := make(bson.A, 0, len(n))
		for _, child := range n {
			c, err := translate(child)
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, c)
		}
		return bson.M{"$and": clauses}, nil
	case query.Or:
		clauses := make(bson.A, 0, len(n))
		for _, child := range n {
			c, err := translate(child)
			if err != nil {
				return nil, err
			}
			if isNothing(c) {
				continue
			}
			clauses = append(clauses, c)
		}
		switch len(clauses) {
		case 0:
			return matchNothing, nil
		case 1:
			return clauses[0].(bson.M), nil
		}
		return bson.M{"$or": clauses}, nil
	case query.Eq:
		if n.Field == query.FieldStorageID {
			oid, err := primitive.ObjectIDFromHex(n.Value)
			if err != nil {
				return matchNothing, nil
			}
			return bson.M{"_id": oid}, nil
		}
		return bson.M{string(n.Field): n.Value}, nil
	case query.Contains:
		re := primitive.Regex{Pattern: regexp.QuoteMeta(n.Term), Options: "i"}
		clauses := make(bson.A, 0, len(n.Fields)+1)
		for _, f := range n.Fields {
			clauses = append(clauses, bson.M{string(f): re})
			if f == query.FieldTitle {
				// legacy documents carry the title as name
				clauses = append(clauses, bson.M{"name": re})
			}
		}
		if len(clauses) == 1 {
			return clauses[0].(bson.M), nil
		}
		return bson.M{"$or": clauses}, nil
	}
	return nil, fmt.Errorf("untranslatable predicate %T", p)
}

func isNothing(m bson.M) bool {
	v, ok := m["_id"].(bson.M)
	if !ok || len(m) != 1 {
		return false
	}
	in, ok := v["$in"].(bson.A)
	return ok && len(in) == 0
}
