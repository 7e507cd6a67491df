package skipset

import "fmt"

func ExampleSet_Insert() {
	s := NewOrdered[int]()
	s.Insert(10)
	s.Insert(5)
	s.Insert(10)
	fmt.Println(s.Len())
	// Output: 2
}

func ExampleSet_Contains() {
	s := NewOrdered[string]()
	s.Insert("pear")
	s.Insert("apple")
	fmt.Println(s.Contains("apple"), s.Contains("plum"))
	// Output: true false
}

func ExampleSet_Erase() {
	s := NewOrdered[int]()
	s.Insert(1)
	s.Insert(2)
	fmt.Println(s.Erase(1), s.Erase(1))
	fmt.Println(s.Len())
	// Output: true false
	// 1
}

func ExampleSet_Iterator() {
	s := NewOrdered[int]()
	s.Insert(20)
	s.Insert(5)
	s.Insert(10)

	it := s.Iterator()
	for it.HasNext() {
		v, _ := it.Next()
		fmt.Printf("%d ", v)
	}
	fmt.Println()
	// Output: 5 10 20
}

func ExampleSet_Compare() {
	a := NewOrdered[int]()
	a.Insert(10)
	a.Insert(20)

	b := NewOrdered[int]()
	b.Insert(10)
	b.Insert(20)
	b.Insert(30)

	fmt.Println(a.Less(b), a.Equal(b))
	// Output: true false
}
