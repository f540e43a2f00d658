package circle_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/giftcircle/pkg/circle"
	"github.com/matzehuels/giftcircle/pkg/errors"
)

// firstPick always chooses the first candidate, making draws reproducible
// in examples.
type firstPick struct{}

func (firstPick) IntN(int) int { return 0 }

func Example() {
	people := []circle.Participant{
		circle.New("Father", 1),
		circle.New("Mother", 1),
		circle.New("Son", 2),
		circle.New("Daughter", 2),
	}

	res, err := circle.Generate(context.Background(), people, circle.Options{
		UseGroups: true,
		Rand:      firstPick{},
	})
	if err != nil {
		fmt.Println(errors.UserMessage(err))
		return
	}

	for _, p := range res.Pairs() {
		fmt.Printf("%s gives to %s\n", p.Giver, p.Recipient)
	}
	fmt.Println(res.Chain())
	// Output:
	// Father gives to Son
	// Son gives to Mother
	// Mother gives to Daughter
	// Daughter gives to Father
	// Father → Son → Mother → Daughter → Father
}

func ExampleHasPossibleCycle() {
	balanced := []circle.Participant{
		circle.New("A", 1), circle.New("B", 1), circle.New("C", 2), circle.New("D", 3),
	}
	lopsided := []circle.Participant{
		circle.New("A", 1), circle.New("B", 1), circle.New("C", 1), circle.New("D", 2),
	}
	fmt.Println(circle.HasPossibleCycle(balanced))
	fmt.Println(circle.HasPossibleCycle(lopsided))
	// Output:
	// true
	// false
}

func ExampleLargestGroup() {
	people := []circle.Participant{
		circle.New("A", 2), circle.New("B", 2), circle.New("C", 1), circle.New("D", 1),
	}
	g, _ := circle.LargestGroup(people)
	fmt.Printf("group %d with %d members\n", g.ID, g.Size)
	// Output:
	// group 1 with 2 members
}

func ExampleGenerate_infeasible() {
	people := []circle.Participant{
		circle.New("Father", 1),
		circle.New("Mother", 1),
		circle.New("Son", 1),
		circle.New("Daughter", 2),
	}
	_, err := circle.Generate(context.Background(), people, circle.Options{UseGroups: true})
	fmt.Println(errors.GetCode(err))
	// Output:
	// INFEASIBLE_GROUP_DISTRIBUTION
}
